package utils

import (
	"mime/multipart"
	"testing"
)

func fileHeaderOfSize(n int64) *multipart.FileHeader {
	return &multipart.FileHeader{Size: n}
}

func TestCheckUploadSize(t *testing.T) {
	tests := []struct {
		name   string
		header *multipart.FileHeader
		want   SizeCheck
	}{
		{"nil header", nil, SizeUnknown},
		{"undeterminable size", fileHeaderOfSize(0), SizeUnknown},
		{"over the limit", fileHeaderOfSize(101), SizeTooLarge},
		{"exactly at the limit", fileHeaderOfSize(100), SizeOK},
		{"under the limit", fileHeaderOfSize(1), SizeOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckUploadSize(tt.header, 100); got != tt.want {
				t.Errorf("CheckUploadSize = %v, want %v", got, tt.want)
			}
		})
	}
}
