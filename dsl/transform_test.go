package dsl_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakit/kata"
	"github.com/katakit/kata/dsl"
)

type userID string

func TestContra_AdaptsDomainSide(t *testing.T) {
	s := dsl.Contra(dsl.String(),
		func(id userID) string { return string(id) },
		func(v string) userID { return userID(v) },
	)
	require.Equal(t, userID("u-1"), s.Decode(s.Encode(userID("u-1"))))
	// validator is unchanged
	assert.True(t, s.Validate("anything"))
	assert.False(t, s.Validate(1.0))
}

func TestCo_AdaptsRepresentationSide(t *testing.T) {
	// numbers carried as decimal strings on the wire
	s := dsl.Co(dsl.Number(),
		func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
		func(v string) float64 {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				panic(err)
			}
			return f
		},
		func(v any) bool {
			sv, ok := v.(string)
			if !ok {
				return false
			}
			_, err := strconv.ParseFloat(sv, 64)
			return err == nil
		},
	)
	require.Equal(t, "30", s.Encode(30.0))
	require.Equal(t, 30.0, s.Decode("30"))
	assert.True(t, s.Validate("30"))
	assert.False(t, s.Validate("thirty"))
	assert.False(t, s.Validate(30.0))
}

func TestCompose_ChainsAndKeepsOnlySecondValidator(t *testing.T) {
	colors := dsl.Indexing([]string{"red", "green", "blue"})
	s := dsl.Compose(colors, dsl.Number())
	require.Equal(t, 1.0, s.Encode("green"))
	require.Equal(t, "blue", s.Decode(2.0))
	// only the second schema's validator survives composition: any number
	// passes even when it is outside the first schema's table.
	assert.True(t, s.Validate(99.0))
	assert.False(t, s.Validate("green"))
}

func TestConstrain_NarrowsValidation(t *testing.T) {
	positive := dsl.Constrain(dsl.Number(), func(f float64) bool { return f > 0 })
	assert.True(t, positive.Validate(1.0))
	assert.False(t, positive.Validate(-1.0))
	assert.False(t, positive.Validate("1"))
	// encode/decode unchanged
	require.Equal(t, 2.5, positive.Decode(positive.Encode(2.5)))
}

func TestAsserting_EquivalentToConstrain(t *testing.T) {
	upper := dsl.Asserting(dsl.String(), func(v any) bool {
		sv, ok := v.(string)
		return ok && sv == strings.ToUpper(sv)
	})
	assert.True(t, upper.Validate("HI"))
	assert.False(t, upper.Validate("hi"))
	assert.False(t, upper.Validate(1.0))
}

func TestLazy_ReinvokesThunkPerOperation(t *testing.T) {
	calls := 0
	s := dsl.Lazy(func() kata.Schema[string, string] {
		calls++
		return dsl.String()
	})
	// construction alone never evaluates the thunk
	require.Equal(t, 0, calls)
	_ = s.Encode("x")
	_ = s.Decode("x")
	assert.True(t, s.Validate("x"))
	require.Equal(t, 3, calls)
}
