package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00.000"},
		{-5, "00:00:00.000"},
		{999, "00:00:00.999"},
		{61_000, "00:01:01.000"},
		{3_723_456, "01:02:03.456"},
	}
	for _, testCase := range cases {
		assert.Equal(t, testCase.want, formatElapsed(testCase.ms))
	}
}
