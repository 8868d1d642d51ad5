package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrKey(t *testing.T) {
	key := strKey("user_id", "u1")
	v, ok := key["user_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "u1", v.Value)
}

func TestCompositeKey(t *testing.T) {
	key := compositeKey("email", "a@b.com", "code", "123456")
	require.Len(t, key, 2)
	pk, ok := key["email"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", pk.Value)
	sk, ok := key["code"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "123456", sk.Value)
}

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(map[string]interface{}{"name": "alice"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", expr)
	assert.Equal(t, map[string]string{"#f0": "name"}, names)
	_, ok := values[":v0"]
	assert.True(t, ok)
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	updates := map[string]interface{}{
		"email":    "a@b.com",
		"name":     "Alice",
		"quantity": 3,
	}
	// Call twice to verify determinism.
	expr1, names1, _, err := buildUpdateExpr(updates)
	require.NoError(t, err)
	expr2, _, _, err := buildUpdateExpr(updates)
	require.NoError(t, err)

	assert.Equal(t, expr1, expr2)

	// Keys must be sorted: email < name < quantity
	assert.Equal(t, "email", names1["#f0"])
	assert.Equal(t, "name", names1["#f1"])
	assert.Equal(t, "quantity", names1["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", expr1)
}

func TestBuildUpdateExpr_ValuesMarshalledCorrectly(t *testing.T) {
	_, _, values, err := buildUpdateExpr(map[string]interface{}{"is_best_seller": true})
	require.NoError(t, err)
	av, ok := values[":v0"]
	require.True(t, ok)
	boolVal, isBool := av.(*types.AttributeValueMemberBOOL)
	require.True(t, isBool)
	assert.True(t, boolVal.Value)
}

func TestWithUpdatedAt_DoesNotMutateInput(t *testing.T) {
	updates := map[string]interface{}{"name": "Alice"}
	stamped := withUpdatedAt(updates)

	require.Len(t, updates, 1)
	_, ok := updates["updated_at"]
	assert.False(t, ok)

	require.Len(t, stamped, 2)
	assert.Equal(t, "Alice", stamped["name"])
	assert.NotEmpty(t, stamped["updated_at"])
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, _, _, err := buildUpdateExpr(map[string]interface{}{})
	assert.ErrorContains(t, err, "no fields to update")
}
