package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stayswap/stayswap/internal/models"
)

func setupTargetPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS swap_targets (
		target_id UUID PRIMARY KEY,
		source_swap_id UUID NOT NULL,
		target_swap_id UUID NOT NULL,
		proposal_id UUID NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE UNIQUE INDEX IF NOT EXISTS swap_targets_active_source
		ON swap_targets (source_swap_id) WHERE status = 'active';
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newTestTarget(sourceSwapID, targetSwapID uuid.UUID) *models.TargetDB {
	return &models.TargetDB{
		TargetID:     uuid.New(),
		SourceSwapID: sourceSwapID,
		TargetSwapID: targetSwapID,
		ProposalID:   uuid.New(),
		Status:       models.TargetStatusActive,
	}
}

func TestTargetRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupTargetPostgresContainer(t)
	defer teardown()

	writeRepo := NewTargetWriteRepository(db, nil)
	readRepo := NewTargetReadRepository(db, nil)
	ctx := context.Background()

	target := newTestTarget(uuid.New(), uuid.New())
	err := writeRepo.Save(ctx, target)
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, target.TargetID)
	assert.NoError(t, err)
	assert.Equal(t, target.SourceSwapID, got.SourceSwapID)
	assert.Equal(t, target.TargetSwapID, got.TargetSwapID)
	assert.Equal(t, target.ProposalID, got.ProposalID)
	assert.Equal(t, models.TargetStatusActive, got.Status)
}

func TestTargetWriteRepository_Cancel(t *testing.T) {
	db, teardown := setupTargetPostgresContainer(t)
	defer teardown()

	writeRepo := NewTargetWriteRepository(db, nil)
	ctx := context.Background()

	target := newTestTarget(uuid.New(), uuid.New())
	assert.NoError(t, writeRepo.Save(ctx, target))

	// 1. First cancel flips the edge
	affected, err := writeRepo.Cancel(ctx, target.TargetID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// 2. Second cancel is a no-op, not an error
	affected, err = writeRepo.Cancel(ctx, target.TargetID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestTargetRepository_SingleOutgoingEdge(t *testing.T) {
	db, teardown := setupTargetPostgresContainer(t)
	defer teardown()

	writeRepo := NewTargetWriteRepository(db, nil)
	readRepo := NewTargetReadRepository(db, nil)
	ctx := context.Background()

	sourceSwapID := uuid.New()
	first := newTestTarget(sourceSwapID, uuid.New())
	assert.NoError(t, writeRepo.Save(ctx, first))

	// Switching targets cancels the old edge before creating the new one
	affected, err := writeRepo.CancelActiveBySource(ctx, sourceSwapID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	second := newTestTarget(sourceSwapID, uuid.New())
	assert.NoError(t, writeRepo.Save(ctx, second))

	active, err := readRepo.GetActiveBySource(ctx, sourceSwapID)
	assert.NoError(t, err)
	assert.Equal(t, second.TargetID, active.TargetID)

	outgoing, err := readRepo.ListOutgoing(ctx, sourceSwapID)
	assert.NoError(t, err)
	assert.Len(t, outgoing, 1)
	assert.Equal(t, second.TargetID, outgoing[0].TargetID)
}

func TestTargetRepository_RejectsSecondActiveOutgoingEdge(t *testing.T) {
	db, teardown := setupTargetPostgresContainer(t)
	defer teardown()

	writeRepo := NewTargetWriteRepository(db, nil)
	ctx := context.Background()

	sourceSwapID := uuid.New()
	assert.NoError(t, writeRepo.Save(ctx, newTestTarget(sourceSwapID, uuid.New())))

	// The unique index keeps a second active edge for the same source out
	// even when two writers race past the service-level checks
	err := writeRepo.Save(ctx, newTestTarget(sourceSwapID, uuid.New()))
	assert.Error(t, err)

	// After cancelling the first edge a new active one goes in
	_, err = writeRepo.CancelActiveBySource(ctx, sourceSwapID)
	assert.NoError(t, err)
	assert.NoError(t, writeRepo.Save(ctx, newTestTarget(sourceSwapID, uuid.New())))
}

func TestTargetWriteRepository_CancelActiveByTarget(t *testing.T) {
	db, teardown := setupTargetPostgresContainer(t)
	defer teardown()

	writeRepo := NewTargetWriteRepository(db, nil)
	readRepo := NewTargetReadRepository(db, nil)
	ctx := context.Background()

	targetSwapID := uuid.New()
	winner := newTestTarget(uuid.New(), targetSwapID)
	loser1 := newTestTarget(uuid.New(), targetSwapID)
	loser2 := newTestTarget(uuid.New(), targetSwapID)
	assert.NoError(t, writeRepo.Save(ctx, winner))
	assert.NoError(t, writeRepo.Save(ctx, loser1))
	assert.NoError(t, writeRepo.Save(ctx, loser2))

	// 1. Keep the winner's edge, cancel the rest
	affected, err := writeRepo.CancelActiveByTarget(ctx, targetSwapID, &winner.ProposalID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	incoming, err := readRepo.ListIncoming(ctx, targetSwapID)
	assert.NoError(t, err)
	assert.Len(t, incoming, 1)
	assert.Equal(t, winner.TargetID, incoming[0].TargetID)

	// 2. Nil keep cancels everything
	affected, err = writeRepo.CancelActiveByTarget(ctx, targetSwapID, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	incoming, err = readRepo.ListIncoming(ctx, targetSwapID)
	assert.NoError(t, err)
	assert.Len(t, incoming, 0)
}

func TestTargetWriteRepository_CancelByProposalID(t *testing.T) {
	db, teardown := setupTargetPostgresContainer(t)
	defer teardown()

	writeRepo := NewTargetWriteRepository(db, nil)
	readRepo := NewTargetReadRepository(db, nil)
	ctx := context.Background()

	target := newTestTarget(uuid.New(), uuid.New())
	assert.NoError(t, writeRepo.Save(ctx, target))

	affected, err := writeRepo.CancelByProposalID(ctx, target.ProposalID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = readRepo.GetActiveBySource(ctx, target.SourceSwapID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
