// file: internals/helpers/push/fcm.go
package push

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMDispatcher — implementasi Dispatcher di atas Firebase Cloud Messaging.
type FCMDispatcher struct {
	client *messaging.Client
}

// NewFCMDispatcher inisialisasi app Firebase dari service-account JSON.
// credentialsFile kosong → pakai Application Default Credentials.
func NewFCMDispatcher(ctx context.Context, credentialsFile string) (*FCMDispatcher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase init: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging: %w", err)
	}
	log.Println("✅ FCM dispatcher siap.")
	return &FCMDispatcher{client: client}, nil
}

func (d *FCMDispatcher) Send(ctx context.Context, tokens []string, title, body string) ([]SendResult, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > MaxTokensPerBatch {
		return nil, fmt.Errorf("fcm: %d token melebihi batas %d per batch", len(tokens), MaxTokensPerBatch)
	}

	resp, err := d.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]SendResult, 0, len(tokens))
	for i, r := range resp.Responses {
		res := SendResult{Token: tokens[i], OK: r.Success}
		if !r.Success && r.Error != nil {
			res.Err = r.Error
			// unregistered / invalid-argument = token permanen mati
			res.Invalid = messaging.IsUnregistered(r.Error) || errorutils.IsInvalidArgument(r.Error)
		}
		out = append(out, res)
	}
	return out, nil
}
