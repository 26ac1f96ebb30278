package cnpj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/pkg/cnpj"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"con máscara", "12.345.678/0001-95", nil},
		{"solo dígitos", "11222333000181", nil},
		{"dígito verificador errado", "12.345.678/0001-90", cnpj.ErrCheckDigits},
		{"corto", "1234567800019", cnpj.ErrFormat},
		{"repetidos", "11.111.111/1111-11", cnpj.ErrFormat},
		{"vacío", "", cnpj.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cnpj.Validate(tc.input)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestComputeCheckDigits(t *testing.T) {
	first, second, err := cnpj.ComputeCheckDigits("123456780001")
	require.NoError(t, err)
	assert.Equal(t, byte('9'), first)
	assert.Equal(t, byte('5'), second)

	_, _, err = cnpj.ComputeCheckDigits("123")
	assert.ErrorIs(t, err, cnpj.ErrFormat)
}

func TestNormalizeAndFormat(t *testing.T) {
	assert.Equal(t, "12345678000190", cnpj.Normalize("12.345.678/0001-90"))
	assert.Equal(t, "12.345.678/0001-90", cnpj.Format("12345678000190"))
	assert.Equal(t, "abc", cnpj.Format("abc"))
}

func TestValidateFormat_AceptaDigitoErrado(t *testing.T) {
	assert.NoError(t, cnpj.ValidateFormat("12.345.678/0001-90"))
}
