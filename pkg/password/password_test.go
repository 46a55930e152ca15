package password

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Status
	}{
		{"empty", "", TooShort},
		{"all classes but short", "Ab1!", TooShort},
		{"seven characters", "Aa1!Aa1", TooShort},
		{"valid at boundary", "Abcdef1!", Valid},
		{"no uppercase or special", "abcdefg1", NoUppercase},
		{"missing special only", "Abcdefg1", NoSpecialChar},
		{"no lowercase", "ABCDEFG1!", NoLowercase},
		{"no digit", "Abcdefg!", NoDigit},
		{"only digits", "1234567890", NoLowercase},
		{"only specials", "!@#$%^&*()", NoLowercase},
		{"uppercase and digit missing", "abcdefg!", NoUppercase},
		{"digit and special missing", "Abcdefgh", NoDigit},
		{"lowercase and special missing", "ABCDEFG1", NoLowercase},
		{"backslash counts as special", `Abcdef1\`, Valid},
		{"double quote counts as special", `Abcdef1"`, Valid},
		{"space is not special", "Abcdef1 ", NoSpecialChar},
		{"unicode punctuation is not special", "Abcdef1¡", NoSpecialChar},
		{"unicode letters count", "Ünïcödé1!", Valid},
		{"greek letters", "Σίσυφος9#", Valid},
		{"arabic-indic digit", "Abcdefg٣!", Valid},
		{"caseless script", "日本語日本語日本語1!", NoLowercase},
		{"invalid utf-8", "Abcdef1\xff", NoSpecialChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.input))
		})
	}
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	// seven runes, fourteen bytes
	input := "Éé1!ÉéÉ"
	require.Greater(t, len(input), MinLength)
	assert.Equal(t, TooShort, Validate(input))
}

func TestValidate_ShortInputsAlwaysTooShort(t *testing.T) {
	base := "Aa1!Aa1!"
	for n := 0; n < MinLength; n++ {
		assert.Equal(t, TooShort, Validate(base[:n]), "length %d", n)
	}
}

func TestValidate_PriorityOrder(t *testing.T) {
	classes := map[Status]string{
		NoLowercase:   "abcd",
		NoUppercase:   "EFGH",
		NoDigit:       "1234",
		NoSpecialChar: "!@#$",
	}
	order := []Status{NoLowercase, NoUppercase, NoDigit, NoSpecialChar}

	// drop every pair of classes and expect the earlier one to be reported
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			var sb strings.Builder
			for _, s := range order {
				if s != order[i] && s != order[j] {
					sb.WriteString(classes[s])
				}
			}
			input := sb.String()
			assert.Equal(t, order[i], Validate(input), "input %q", input)
		}
	}
}

func TestValidate_LongInputs(t *testing.T) {
	assert.Equal(t, Valid, Validate(strings.Repeat("aB3$", 500)))
	assert.Equal(t, NoSpecialChar, Validate(strings.Repeat("aB3", 1000)))
	assert.Equal(t, NoLowercase, Validate(strings.Repeat("!", 2000)))
}

func TestValidate_Concurrent(t *testing.T) {
	inputs := []string{"", "Abcdef1!", "abcdefg1", "Abcdefg1", "Ab1!"}
	want := make([]Status, len(inputs))
	for i, in := range inputs {
		want[i] = Validate(in)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, want[i], Validate(in))
			}
		}()
	}
	wg.Wait()
}

func TestValidator_ImplementsFieldValidator(t *testing.T) {
	var v FieldValidator[Status] = Validator{}
	assert.Equal(t, Valid, v.Validate("Abcdef1!"))
	assert.Equal(t, TooShort, v.Validate("Ab1!"))
}

func TestIsSpecial(t *testing.T) {
	assert.Len(t, []rune(SpecialCharacters), 32)
	for _, r := range SpecialCharacters {
		assert.True(t, IsSpecial(r), "%q", r)
	}
	for _, r := range "aZ5 \t¡§€" {
		assert.False(t, IsSpecial(r), "%q", r)
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.Equal(t, s == Valid, s.IsValid(), s.String())
	}
	assert.False(t, Status(0).IsValid())
}

func TestStatus_Names(t *testing.T) {
	assert.Equal(t, []string{"TooShort", "NoLowercase", "NoUppercase", "NoDigit", "NoSpecialChar", "Valid"},
		func() []string {
			var names []string
			for _, s := range Statuses() {
				names = append(names, s.String())
			}
			return names
		}())
	assert.Equal(t, "Status(42)", Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		parsed, err := ParseStatus(strings.ToLower(s.String()))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("Unknown")
	assert.Error(t, err)
}

func TestStatus_JSON(t *testing.T) {
	out, err := json.Marshal(map[string]Status{"status": NoDigit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"NoDigit"}`, string(out))

	var decoded struct {
		Status Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Valid"}`), &decoded))
	assert.Equal(t, Valid, decoded.Status)

	_, err = json.Marshal(Status(0))
	assert.Error(t, err)
}
