package media

// File is one uploaded multipart part, held in memory until it is pushed to
// object storage.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) Size() int64 {
	return int64(len(f.Data))
}
