// file: internals/helpers/push/push.go
package push

import "context"

// Batas token per panggilan provider (FCM multicast limit)
const MaxTokensPerBatch = 500

// SendResult — hasil per token. Invalid=true artinya token permanen mati
// (unregistered / invalid argument) dan boleh di-prune dari pemiliknya.
type SendResult struct {
	Token   string
	OK      bool
	Invalid bool
	Err     error
}

// Dispatcher — boundary provider push-notification. Maksimal
// MaxTokensPerBatch token per panggilan; caller yang membagi batch.
type Dispatcher interface {
	Send(ctx context.Context, tokens []string, title, body string) ([]SendResult, error)
}

// ChunkTokens membagi daftar token jadi batch berukuran size.
func ChunkTokens(tokens []string, size int) [][]string {
	if size <= 0 {
		size = MaxTokensPerBatch
	}
	var out [][]string
	for len(tokens) > 0 {
		n := size
		if len(tokens) < n {
			n = len(tokens)
		}
		out = append(out, tokens[:n])
		tokens = tokens[n:]
	}
	return out
}
