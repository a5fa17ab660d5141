package http_test

import (
	"reflect"
	"testing"

	"delivery/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractPath = "../../../../api/openapi.yml"

// TestOpenAPIContract_IsValid guards the source contract the server code is
// generated from. A broken document would only surface on the next
// regeneration otherwise.
func TestOpenAPIContract_IsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(contractPath)
	require.NoError(t, err)

	require.NoError(t, doc.Validate(loader.Context))
}

// TestOpenAPIContract_OperationsMatchServerInterface verifies every
// operation in the contract has a handler on the generated ServerInterface
// and vice versa, catching drift between the document and the generated code.
func TestOpenAPIContract_OperationsMatchServerInterface(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(contractPath)
	require.NoError(t, err)

	documented := make(map[string]bool)
	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			require.NotEmpty(t, op.OperationID, "every operation needs an operationId")
			name := capitalize(op.OperationID)
			assert.False(t, documented[name], "duplicate operationId %s", op.OperationID)
			documented[name] = true
		}
	}

	ifaceType := reflect.TypeOf((*servers.ServerInterface)(nil)).Elem()
	implemented := make(map[string]bool, ifaceType.NumMethod())
	for i := 0; i < ifaceType.NumMethod(); i++ {
		implemented[ifaceType.Method(i).Name] = true
	}

	for name := range documented {
		assert.True(t, implemented[name], "operation %s has no generated handler", name)
	}
	for name := range implemented {
		assert.True(t, documented[name], "handler %s has no documented operation", name)
	}
}

// TestOpenAPIContract_CreateOperationsRespond201 pins the success code of
// the resource-creating operations. The solver endpoint regressed to 200
// once, so the contract keeps all three on 201.
func TestOpenAPIContract_CreateOperationsRespond201(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(contractPath)
	require.NoError(t, err)

	created := map[string]bool{
		"createManualAssignment": true,
		"createAutoAssignment":   true,
		"createSession":          true,
	}

	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			if !created[op.OperationID] {
				continue
			}
			delete(created, op.OperationID)

			assert.NotNil(t, op.Responses.Value("201"),
				"%s must declare a 201 response", op.OperationID)
			assert.Nil(t, op.Responses.Value("200"),
				"%s must not declare a 200 response", op.OperationID)
		}
	}

	assert.Empty(t, created, "missing create operations in the contract")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
