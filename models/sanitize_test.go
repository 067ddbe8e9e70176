package models

import "testing"

func TestStripTags(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"pending", "pending"},
		{"in_transit", "in_transit"},
		{"<script>pending</script>", "pending"},
		{"<b>paid</b>", "paid"},
		{"<div><span>cart</span></div>", "cart"},
		{"pen<br>ding", "pending"},
		{"<img src=x onerror=alert(1)>shipped", "shipped"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.expected {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}
