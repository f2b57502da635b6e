package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"  resume.docx  ", "resume.docx"},
		{"dir/resume.pdf", "resume.pdf"},
		{`C:\Users\me\resume.pdf`, "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
