package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paykit/pkg/enum"
)

// billingCycle mixes annotated tokens with fallback-to-name values.
type billingCycle string

const (
	cycleMonthly     billingCycle = "monthly"
	cycleYearly      billingCycle = "yearly"
	cycleEveryTwoWks billingCycle = "EveryTwoWeeks"
)

type cardBrand string

const (
	brandVisa    cardBrand = "visa"
	brandAmex    cardBrand = "AmericanExpress"
	brandDefault cardBrand = "unknown"
)

func init() {
	enum.Register(enum.Values[billingCycle]{
		cycleMonthly:     "",
		cycleYearly:      "",
		cycleEveryTwoWks: "every_two_weeks",
	})
	enum.Register(enum.Values[cardBrand]{
		brandVisa:    "",
		brandAmex:    "american_express",
		brandDefault: "",
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value billingCycle
		want  string
	}{
		{name: "fallback to intrinsic name", value: cycleMonthly, want: "monthly"},
		{name: "another fallback", value: cycleYearly, want: "yearly"},
		{name: "annotated token overrides name", value: cycleEveryTwoWks, want: "every_two_weeks"},
		{name: "undeclared value encodes as its name", value: billingCycle("weekly"), want: "weekly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, enum.Encode(tt.value))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip for every declared value", func(t *testing.T) {
		t.Parallel()
		for _, v := range []billingCycle{cycleMonthly, cycleYearly, cycleEveryTwoWks} {
			got, err := enum.Decode[billingCycle](enum.Encode(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("unknown token fails with decode error naming the token", func(t *testing.T) {
		t.Parallel()
		_, err := enum.Decode[billingCycle]("fortnightly")
		require.Error(t, err)

		var decErr *enum.DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, "fortnightly", decErr.Token)
		assert.Contains(t, decErr.Type, "billingCycle")
		assert.Contains(t, err.Error(), "fortnightly")
	})

	t.Run("intrinsic name of an annotated value is not accepted", func(t *testing.T) {
		t.Parallel()
		_, err := enum.Decode[billingCycle]("EveryTwoWeeks")
		require.Error(t, err)
	})

	t.Run("unregistered type fails", func(t *testing.T) {
		t.Parallel()
		type unregistered string
		_, err := enum.Decode[unregistered]("anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not registered")
	})
}

func TestTypesAreIndependent(t *testing.T) {
	t.Parallel()

	// Both types declare a "visa"-style fallback namespace; tokens must
	// resolve within their own type only.
	got, err := enum.Decode[cardBrand]("american_express")
	require.NoError(t, err)
	assert.Equal(t, brandAmex, got)

	_, err = enum.Decode[billingCycle]("american_express")
	require.Error(t, err)
}

func TestDuplicateTokenPanics(t *testing.T) {
	t.Parallel()

	type broken string
	const (
		brokenA broken = "a"
		brokenB broken = "b"
	)

	enum.Register(enum.Values[broken]{
		brokenA: "same",
		brokenB: "same",
	})

	assert.Panics(t, func() {
		enum.Encode(brokenA)
	})
}

func TestJSONHelpers(t *testing.T) {
	t.Parallel()

	t.Run("marshal uses wire token", func(t *testing.T) {
		t.Parallel()
		data, err := enum.MarshalJSON(cycleEveryTwoWks)
		require.NoError(t, err)
		assert.JSONEq(t, `"every_two_weeks"`, string(data))
	})

	t.Run("unmarshal resolves wire token", func(t *testing.T) {
		t.Parallel()
		var v billingCycle
		require.NoError(t, enum.UnmarshalJSON([]byte(`"every_two_weeks"`), &v))
		assert.Equal(t, cycleEveryTwoWks, v)
	})

	t.Run("unmarshal rejects non-string JSON", func(t *testing.T) {
		t.Parallel()
		var v billingCycle
		err := enum.UnmarshalJSON([]byte(`42`), &v)
		require.Error(t, err)
	})

	t.Run("unmarshal rejects unknown token", func(t *testing.T) {
		t.Parallel()
		var v billingCycle
		err := enum.UnmarshalJSON([]byte(`"nope"`), &v)
		var decErr *enum.DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, "nope", decErr.Token)
	})
}

func TestConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	type lazy string
	const lazyOne lazy = "one"
	enum.Register(enum.Values[lazy]{lazyOne: "uno"})

	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				v, err := enum.Decode[lazy]("uno")
				if assert.NoError(t, err) {
					assert.Equal(t, lazyOne, v)
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}

// Guard against accidental coupling to encoding/json internals: a type
// using the helpers must satisfy the marshaler interfaces end to end.
type wrapped struct {
	Cycle billingCycle `json:"cycle"`
}

func (b billingCycle) MarshalJSON() ([]byte, error)     { return enum.MarshalJSON(b) }
func (b *billingCycle) UnmarshalJSON(data []byte) error { return enum.UnmarshalJSON(data, b) }

func TestStructRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(wrapped{Cycle: cycleEveryTwoWks})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cycle":"every_two_weeks"}`, string(data))

	var out wrapped
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, cycleEveryTwoWks, out.Cycle)
}
