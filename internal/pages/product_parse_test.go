package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseInfoLines(t *testing.T) {
	p := &ProductPage{log: zap.NewNop()}
	info := make(map[string]string)

	p.parseInfoLines([]string{
		"Brand: Apple",
		"Product Code: Product 18",
		"Reward Points: 800",
		"Availability: Out Of Stock",
	}, info)

	assert.Equal(t, map[string]string{
		"Brand":         "Apple",
		"Product Code":  "Product 18",
		"Reward Points": "800",
		"Availability":  "Out Of Stock",
	}, info)
}

func TestParseInfoLinesSkipsMalformed(t *testing.T) {
	p := &ProductPage{log: zap.NewNop()}
	info := make(map[string]string)

	p.parseInfoLines([]string{
		"Based on 1 reviews.",
		"Ex Tax: $2,000.00",
		"a:b:c",
	}, info)

	assert.Equal(t, map[string]string{"Ex Tax": "$2,000.00"}, info)
}

func TestParseInfoLinesTrimsWhitespace(t *testing.T) {
	p := &ProductPage{log: zap.NewNop()}
	info := make(map[string]string)

	p.parseInfoLines([]string{"  Brand :  Apple  "}, info)

	assert.Equal(t, "Apple", info["Brand"])
}
