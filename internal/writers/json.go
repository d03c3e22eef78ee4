package writers

import (
	"io"

	"kmerkit/internal/jsonutil"
	"kmerkit/pkg/api"
)

func jsonArray[T any]() Encoder[T] {
	return &collector[T]{flush: func(w io.Writer, all []T) error { return jsonutil.EncodePretty(w, all) }}
}

func init() {
	RegisterRevComp("json", func(Options) Encoder[api.RevCompV1] { return jsonArray[api.RevCompV1]() })
	RegisterReads("json", func(Options) Encoder[api.ReadV1] { return jsonArray[api.ReadV1]() })
	RegisterKmers("json", func(Options) Encoder[api.KmerTableV1] { return jsonArray[api.KmerTableV1]() })
}
