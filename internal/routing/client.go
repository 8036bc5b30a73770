// Package routing provides the travel-time/distance collaborator that
// internal/tour calls to turn a point list into a cost matrix and, once a
// path is chosen, into a rendered route geometry.
package routing

import (
	"context"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/models"
)

// Client is the routing-service collaborator internal/tour depends on.
type Client interface {
	// Matrix returns the pairwise travel-cost matrix for points, in the
	// same order as points.
	Matrix(ctx context.Context, points []models.Location) (*matrix.Matrix, error)
	// Route returns the rendered geometry and total travel seconds for
	// visiting points in the given order.
	Route(ctx context.Context, points []models.Location) (geometry []models.Location, seconds float64, err error)
}
