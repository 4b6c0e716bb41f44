package interfaces

import "context"

// ICEPCache caches advisory CEP validation answers.
// Get reports found == false on a miss.
type ICEPCache interface {
	Get(ctx context.Context, cep string) (valido bool, found bool, err error)
	Set(ctx context.Context, cep string, valido bool) error
}
