package pdf

import "github.com/tarhget/quotes-backend/internal/domain/quote/document"

type Generator interface {
	Generate(doc document.Document) ([]byte, error)
}
