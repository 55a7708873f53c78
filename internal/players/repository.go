package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"

	_ "github.com/lib/pq"
)

// Repository reads player records.
type Repository interface {
	Get(ctx context.Context, id string) (Player, error)
	List(ctx context.Context) ([]Player, error)
}

// MemoryRepository serves a roster held in memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	players map[string]Player
}

func NewMemoryRepository(players []Player) *MemoryRepository {
	m := &MemoryRepository{players: make(map[string]Player, len(players))}
	for _, p := range players {
		m.players[p.ID] = p
	}
	return m
}

// LoadMemoryRepository builds a repository from a roster CSV.
func LoadMemoryRepository(path string) (*MemoryRepository, error) {
	ps, err := LoadRosterCSV(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(ps), nil
}

func (m *MemoryRepository) Get(_ context.Context, id string) (Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[id]
	if !ok {
		return Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return p, nil
}

// List returns players ordered by shirt number, then name.
func (m *MemoryRepository) List(_ context.Context) ([]Player, error) {
	m.mu.RLock()
	out := make([]Player, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, p)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

const playerColumns = `id, number, name, position, team, photo_url, nationality, active`

// PostgresRepository reads the players table.
type PostgresRepository struct {
	db *sql.DB
}

// OpenPostgres opens a lib/pq connection pool for dsn.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(s scanner) (Player, error) {
	var (
		p           Player
		number      sql.NullInt64
		position    sql.NullString
		team        sql.NullString
		photo       sql.NullString
		nationality sql.NullString
	)
	if err := s.Scan(&p.ID, &number, &p.Name, &position, &team, &photo, &nationality, &p.Active); err != nil {
		return Player{}, err
	}
	p.Number = int(number.Int64)
	p.Position = position.String
	p.Team = team.String
	p.PhotoURL = photo.String
	p.Nationality = nationality.String
	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	if err != nil {
		return Player{}, fmt.Errorf("query player %s: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+playerColumns+` FROM players ORDER BY number, name`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
