package client

import (
	"context"

	"github.com/dmitrijs2005/recordsync/internal/client/models"
)

type Client interface {
	ListRecords(ctx context.Context) ([]models.Record, error)
	AddRecord(ctx context.Context, content string) (*models.AddResponse, error)
}
