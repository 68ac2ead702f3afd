package checksum

import (
	"testing"
)

func TestSHA256Calculator_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty",
			content: "",
			want:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:    "abc",
			content: "abc",
			want:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.CalculateRaw([]byte(tt.content)); got != tt.want {
				t.Errorf("CalculateRaw(%q) = %s, want %s", tt.content, got, tt.want)
			}
		})
	}
}

func TestSHA256Calculator_CalculateRaw_Deterministic(t *testing.T) {
	calc := New()
	content := []byte("9,Jordan,4000,0.50,0.50,0.0\n")

	if calc.CalculateRaw(content) != calc.CalculateRaw(content) {
		t.Error("CalculateRaw should be deterministic")
	}
}

func TestSHA256Calculator_Normalized_LineEndingInsensitive(t *testing.T) {
	calc := New()

	variants := []string{
		"1,Casey,100,0.5,0.5,0.0\n2,Riley,200,0.4,0.6,0.2\n",
		"1,Casey,100,0.5,0.5,0.0\r\n2,Riley,200,0.4,0.6,0.2\r\n",
		"1,Casey,100,0.5,0.5,0.0\r2,Riley,200,0.4,0.6,0.2",
		"1,Casey,100,0.5,0.5,0.0  \n2,Riley,200,0.4,0.6,0.2\t\n\n\n",
	}

	want := calc.CalculateNormalized([]byte(variants[0]))
	for _, v := range variants[1:] {
		if got := calc.CalculateNormalized([]byte(v)); got != want {
			t.Errorf("CalculateNormalized(%q) = %s, want %s", v, got, want)
		}
	}
}

func TestSHA256Calculator_Normalized_ContentSensitive(t *testing.T) {
	calc := New()

	a := calc.CalculateNormalized([]byte("1,Casey,100,0.5,0.5,0.0\n"))
	b := calc.CalculateNormalized([]byte("1,Casey,101,0.5,0.5,0.0\n"))
	if a == b {
		t.Error("Different field values should produce different normalized checksums")
	}
}

func TestSHA256Calculator_RawVsNormalized_ShouldDiffer(t *testing.T) {
	calc := New()
	content := []byte("1,Casey,100,0.5,0.5,0.0\r\n")

	if calc.CalculateRaw(content) == calc.CalculateNormalized(content) {
		t.Error("Raw and normalized checksums should differ when CRLF is present")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a\r\nb\r\n", "a\nb"},
		{"a  \nb\t", "a\nb"},
		{"a\n\n\n", "a"},
		{"a\n\nb", "a\n\nb"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := string(normalize([]byte(tt.input))); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func BenchmarkSHA256Calculator_CalculateRaw(b *testing.B) {
	calc := New()
	content := []byte("1,Casey,100,0.5,0.5,0.0\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.CalculateRaw(content)
	}
}
