package domain

// ProgressEvent reports the cumulative bytes written for one upload.
type ProgressEvent struct {
	UploadID     UploadID
	Filename     string
	BytesWritten int64
	TotalBytes   int64
}

// Percent is 100 for an empty payload so a zero-byte upload still
// reports completion.
func (p ProgressEvent) Percent() float64 {
	if p.TotalBytes == 0 {
		return 100
	}
	return float64(p.BytesWritten) / float64(p.TotalBytes) * 100
}

func (p ProgressEvent) Done() bool {
	return p.BytesWritten == p.TotalBytes
}
