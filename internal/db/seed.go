package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SeedJob struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Description string
	Tags        []string
	Types       []string
	PostedDays  int
}

// EnsureSeedJobs inserts the starter job catalog on an empty jobs table so
// that a fresh deployment has listings to browse. Runs after migrations.
func EnsureSeedJobs(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	seeds := []SeedJob{
		{
			Title:       "Senior Software Engineer",
			Company:     "Google",
			Location:    "San Francisco, CA",
			Salary:      "$150K - $200K",
			Description: "Join our team to build next-generation cloud infrastructure and help scale our most critical services.",
			Tags:        []string{"Python", "React", "Cloud"},
			Types:       []string{"Full-time", "Remote"},
			PostedDays:  2,
		},
		{
			Title:       "Full Stack Engineer",
			Company:     "Microsoft",
			Location:    "Seattle, WA",
			Salary:      "$130K - $180K",
			Description: "Work on cutting-edge web applications and help shape the future of our cloud services.",
			Tags:        []string{"JavaScript", "Node.js", "Hybrid"},
			Types:       []string{"Full-time", "Hybrid"},
			PostedDays:  3,
		},
		{
			Title:       "iOS Engineer",
			Company:     "Apple",
			Location:    "Cupertino, CA",
			Salary:      "$140K - $190K",
			Description: "Join the team building the next generation of iOS applications and features.",
			Tags:        []string{"Swift", "iOS", "Mobile"},
			Types:       []string{"Full-time", "On-site"},
			PostedDays:  5,
		},
		{
			Title:       "Backend Engineer",
			Company:     "Stripe",
			Location:    "Remote",
			Salary:      "$135K - $185K",
			Description: "Design and operate the payment APIs used by millions of businesses worldwide.",
			Tags:        []string{"Go", "Postgres", "APIs"},
			Types:       []string{"Full-time", "Remote"},
			PostedDays:  1,
		},
		{
			Title:       "Data Engineer",
			Company:     "Netflix",
			Location:    "Los Gatos, CA",
			Salary:      "$145K - $195K",
			Description: "Build the data pipelines that power personalization for hundreds of millions of members.",
			Tags:        []string{"Spark", "Scala", "Streaming"},
			Types:       []string{"Full-time", "Hybrid"},
			PostedDays:  4,
		},
		{
			Title:       "Product Designer",
			Company:     "Airbnb",
			Location:    "San Francisco, CA",
			Salary:      "$120K - $160K",
			Description: "Craft end-to-end product experiences for guests and hosts around the world.",
			Tags:        []string{"Figma", "Design Systems", "UX"},
			Types:       []string{"Full-time", "On-site"},
			PostedDays:  6,
		},
	}

	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var count int64
	if err := pool.QueryRow(ctxCheck, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seeds {
		ctxInsert, cancel := context.WithTimeout(ctx, timeout)
		_, err := pool.Exec(ctxInsert, `
			INSERT INTO jobs (title, company, location, salary, description, tags, types, posted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW() - make_interval(days => $8))
		`, seed.Title, seed.Company, seed.Location, seed.Salary, seed.Description, seed.Tags, seed.Types, seed.PostedDays)
		cancel()
		if err != nil {
			return fmt.Errorf("insert seed job %q: %w", seed.Title, err)
		}
	}

	return nil
}
