package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		product  ProductDescriptor
		expected ProductClass
	}{
		{
			name:     "cigarette category",
			product:  ProductDescriptor{Name: "Marlboro Red", Category: "Cigarettes"},
			expected: ClassCigarettes,
		},
		{
			name:     "cigarette in name only",
			product:  ProductDescriptor{Name: "Premium cigarette carton", Category: "Tobacco"},
			expected: ClassCigarettes,
		},
		{
			name:     "cigar",
			product:  ProductDescriptor{Name: "Robusto", Category: "Cigars"},
			expected: ClassCigars,
		},
		{
			name:     "cigarette beats cigar keyword overlap",
			product:  ProductDescriptor{Name: "cigarette and cigar sampler", Category: ""},
			expected: ClassCigarettes,
		},
		{
			name:     "open vape system",
			product:  ProductDescriptor{Name: "Sub-ohm mod kit", Category: "Vape"},
			expected: ClassVapeOpen,
		},
		{
			name:     "closed system by pod keyword",
			product:  ProductDescriptor{Name: "Mint pod 4-pack", Category: "Vape"},
			expected: ClassVapeClosed,
		},
		{
			name:     "closed system by disposable keyword",
			product:  ProductDescriptor{Name: "Disposable e-cig", Category: ""},
			expected: ClassVapeClosed,
		},
		{
			name:     "electronic keyword routes to vape",
			product:  ProductDescriptor{Name: "Electronic starter kit", Category: ""},
			expected: ClassVapeOpen,
		},
		{
			name: "closed keyword in description does not reclassify",
			product: ProductDescriptor{
				Name:        "Vapor tank",
				Description: "replacement cartridge sold separately",
				Category:    "",
			},
			expected: ClassVapeOpen,
		},
		{
			name:     "unrecognized defaults to cigars",
			product:  ProductDescriptor{Name: "Pipe tobacco pouch", Category: "Accessories"},
			expected: ClassCigars,
		},
		{
			name:     "empty product defaults to cigars",
			product:  ProductDescriptor{},
			expected: ClassCigars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.product))
		})
	}
}

func TestExtractVolumeML(t *testing.T) {
	tests := []struct {
		name     string
		product  ProductDescriptor
		expected string // "" means no volume
	}{
		{
			name:     "volume in name",
			product:  ProductDescriptor{Name: "Berry e-liquid 30ml"},
			expected: "30",
		},
		{
			name:     "volume with space and decimals",
			product:  ProductDescriptor{Name: "Salt nic 3.5 ml bottle"},
			expected: "3.5",
		},
		{
			name:     "milliliter spelled out in description",
			product:  ProductDescriptor{Name: "House blend", Description: "60 milliliter glass bottle"},
			expected: "60",
		},
		{
			name:     "mixed case unit",
			product:  ProductDescriptor{Name: "Tobacco flavor 10ML"},
			expected: "10",
		},
		{
			name:     "first match wins",
			product:  ProductDescriptor{Name: "Twin pack 30ml", Description: "two 15ml bottles"},
			expected: "30",
		},
		{
			name:     "cartridge default",
			product:  ProductDescriptor{Name: "Tobacco cartridge 2-pack"},
			expected: "1",
		},
		{
			name:     "pod default",
			product:  ProductDescriptor{Name: "Menthol pods"},
			expected: "1",
		},
		{
			name:     "disposable default",
			product:  ProductDescriptor{Name: "Disposable vape pen"},
			expected: "2",
		},
		{
			name:     "no volume and no keyword",
			product:  ProductDescriptor{Name: "e-liquid 10-pack"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVolumeML(tt.product)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(d(tt.expected)), "got %s, want %s", got, tt.expected)
		})
	}
}
