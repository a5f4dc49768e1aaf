package cmd

import (
	"reflect"
	"testing"
)

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		raw     string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"0,2,-1,1", []int{0, 2, -1, 1}, false},
		{" 1 , 3 ", []int{1, 3}, false},
		{"1,x", nil, true},
	}

	for _, tt := range tests {
		got, err := parseAnswers(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAnswers(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseAnswers(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
