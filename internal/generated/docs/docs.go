// Package docs registers the OpenAPI document with swag, which is where echo-swagger
// reads it from.
package docs

import (
	"encoding/json"
	"sync"

	"laundry/internal/generated/servers"

	"github.com/swaggo/swag"
)

var (
	registerOnce sync.Once
	registerErr  error
)

type openapiDoc struct {
	json string
}

func (d openapiDoc) ReadDoc() string {
	return d.json
}

// Register publishes the embedded document under swag.Name. Calling it again is a no-op.
func Register() error {
	registerOnce.Do(func() {
		doc, err := servers.GetSwagger()
		if err != nil {
			registerErr = err
			return
		}

		// The UI calls the API on the host it was loaded from.
		doc.Servers = nil

		raw, err := json.Marshal(doc)
		if err != nil {
			registerErr = err
			return
		}

		swag.Register(swag.Name, openapiDoc{json: string(raw)})
	})
	return registerErr
}
