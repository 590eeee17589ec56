package main

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/iterator"
)

// errPuzzleNotFound is returned when no puzzle has the requested id.
var errPuzzleNotFound = errors.New("puzzle not found")

// puzzleSource looks up the original letters of a puzzle.
type puzzleSource interface {
	Letters(ctx context.Context, puzzleID string) (string, error)
}

// bigQueryPuzzles reads puzzles from a BigQuery table with columns
// puzzle_id STRING and letters STRING.
type bigQueryPuzzles struct {
	projectID string
	table     string
	location  string
}

func (b bigQueryPuzzles) Letters(ctx context.Context, puzzleID string) (string, error) {
	client, err := bigquery.NewClient(ctx, b.projectID)
	if err != nil {
		return "", errors.Wrap(err, "bigquery.NewClient")
	}
	defer client.Close()

	q := client.Query("SELECT letters FROM `" + b.table + "` WHERE puzzle_id = @puzzleId LIMIT 1")
	q.Location = b.location
	q.Parameters = []bigquery.QueryParameter{
		{Name: "puzzleId", Value: puzzleID},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return "", errors.Wrap(err, "q.Run")
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return "", errors.Wrap(err, "job.Wait")
	}
	if err := status.Err(); err != nil {
		return "", errors.Wrap(err, "status.Err")
	}
	it, err := job.Read(ctx)
	if err != nil {
		return "", errors.Wrap(err, "job.Read")
	}

	var row []bigquery.Value
	err = it.Next(&row)
	if err == iterator.Done {
		return "", errors.Wrapf(errPuzzleNotFound, "puzzle %q", puzzleID)
	}
	if err != nil {
		return "", errors.Wrap(err, "it.Next")
	}

	letters, ok := row[0].(string)
	if !ok {
		return "", errors.Newf("row[0] is not a string: %v", row[0])
	}
	return letters, nil
}
