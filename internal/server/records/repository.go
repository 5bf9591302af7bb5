package records

import "context"

type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, content string) (Record, error)
}
