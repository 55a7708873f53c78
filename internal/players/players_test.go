package players

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterCSV = `id,number,name,position,team,photo_url,nationality,active
p-7,7,Lena Marsh,Forward,First Team,photos/marsh.png,Scotland,true
p-1,1,Ola Berg,Goalkeeper,First Team,photos/berg.png,Norway,
p-22,22,Tom Reyes,Midfielder,U21,photos/reyes.png,Spain,false
,,blank row,,,,,
`

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRosterCSV(t *testing.T) {
	ps, err := LoadRosterCSV(writeRoster(t, rosterCSV))
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, Player{
		ID: "p-7", Number: 7, Name: "Lena Marsh", Position: "Forward", Team: "First Team",
		PhotoURL: "photos/marsh.png", Nationality: "Scotland", Active: true,
	}, ps[0])
	assert.True(t, ps[1].Active)
	assert.False(t, ps[2].Active)
}

func TestLoadRosterCSV_Errors(t *testing.T) {
	_, err := LoadRosterCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = LoadRosterCSV(writeRoster(t, "number,name\n7,Lena\n"))
	assert.ErrorContains(t, err, `missing "id"`)

	_, err = LoadRosterCSV(writeRoster(t, "id,number,name\np-1,seven,Lena\n"))
	assert.ErrorContains(t, err, "bad number")
}

func TestFilter(t *testing.T) {
	ps, err := LoadRosterCSV(writeRoster(t, rosterCSV))
	require.NoError(t, err)

	tests := []struct {
		name string
		opt  FilterOptions
		want []string
	}{
		{"no options", FilterOptions{}, []string{"p-7", "p-1", "p-22"}},
		{"active only", FilterOptions{ActiveOnly: true}, []string{"p-7", "p-1"}},
		{"position case-insensitive", FilterOptions{Positions: []string{"goalkeeper"}}, []string{"p-1"}},
		{"team", FilterOptions{Teams: []string{"U21"}}, []string{"p-22"}},
		{"free words all must match", FilterOptions{FreeWords: "lena scot"}, []string{"p-7"}},
		{"free words miss", FilterOptions{FreeWords: "lena spain"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, p := range Filter(ps, tt.opt) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMemoryRepository(t *testing.T) {
	repo, err := LoadMemoryRepository(writeRoster(t, rosterCSV))
	require.NoError(t, err)
	ctx := context.Background()

	p, err := repo.Get(ctx, "p-22")
	require.NoError(t, err)
	assert.Equal(t, "Tom Reyes", p.Name)

	_, err = repo.Get(ctx, "p-99")
	assert.True(t, errors.Is(err, ErrPlayerNotFound))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 7, 22}, []int{all[0].Number, all[1].Number, all[2].Number})
}

func TestPostgresRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)
	query := regexp.QuoteMeta(`SELECT ` + playerColumns + ` FROM players WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs("p-7").WillReturnRows(
		sqlmock.NewRows([]string{"id", "number", "name", "position", "team", "photo_url", "nationality", "active"}).
			AddRow("p-7", 7, "Lena Marsh", "Forward", nil, "photos/marsh.png", nil, true),
	)
	p, err := repo.Get(context.Background(), "p-7")
	require.NoError(t, err)
	assert.Equal(t, Player{ID: "p-7", Number: 7, Name: "Lena Marsh", Position: "Forward", PhotoURL: "photos/marsh.png", Active: true}, p)

	mock.ExpectQuery(query).WithArgs("p-0").WillReturnRows(
		sqlmock.NewRows([]string{"id", "number", "name", "position", "team", "photo_url", "nationality", "active"}),
	)
	_, err = repo.Get(context.Background(), "p-0")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	mock.ExpectQuery(query).WithArgs("p-1").WillReturnError(errors.New("connection reset"))
	_, err = repo.Get(context.Background(), "p-1")
	assert.ErrorContains(t, err, "connection reset")
	assert.False(t, errors.Is(err, ErrPlayerNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM players ORDER BY number, name`)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "number", "name", "position", "team", "photo_url", "nationality", "active"}).
			AddRow("p-1", 1, "Ola Berg", "Goalkeeper", "First Team", "", "Norway", true).
			AddRow("p-7", 7, "Lena Marsh", "Forward", "First Team", "", "Scotland", true),
	)
	ps, err := NewPostgresRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Lena Marsh", ps[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
