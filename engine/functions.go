package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/viant/sqlite-knn/vector"
	sqlite "modernc.org/sqlite"
)

// L2FunctionName is the SQL name of the Euclidean distance function.
const L2FunctionName = "knn_l2"

// RegisterDistanceFunctions registers knn_l2 with the driver so it is
// available on new connections opened after this call. Existing open
// connections will not see it. Repeated registration is not an error.
func RegisterDistanceFunctions(_ *sql.DB) error {
	err := sqlite.RegisterDeterministicScalarFunction(L2FunctionName, 2, l2Impl)
	if err != nil && !strings.Contains(err.Error(), "already registered") {
		return fmt.Errorf("engine: register %s: %w", L2FunctionName, err)
	}
	return nil
}

func asFeatures(arg driver.Value) ([]float64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.DecodeFeatures(v)
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T for features; want BLOB", L2FunctionName, arg)
	}
}

func l2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s: expected 2 arguments, got %d", L2FunctionName, len(args))
	}
	a, err := asFeatures(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFeatures(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	d, err := vector.L2Distance(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", L2FunctionName, err)
	}
	return d, nil
}
