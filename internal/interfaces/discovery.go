package interfaces

import "context"

// Discovery produces zero or more candidate statement URLs. Duplicates are
// possible; an unreachable source page contributes zero locators.
type Discovery interface {
	Discover(ctx context.Context) []string
}
