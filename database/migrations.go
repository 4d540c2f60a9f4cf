package database

import (
	"fmt"
)

func RunMigrations() error {
	usersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN DEFAULT FALSE,
		permissions BIGINT DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := DB.Exec(usersSQL)
	if err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	// Migration for existing users table
	doUsers := `
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name='users' AND column_name='permissions') THEN
			ALTER TABLE users ADD COLUMN permissions BIGINT DEFAULT 0;
		END IF;
	END $$;
	`
	_, err = DB.Exec(doUsers)
	if err != nil {
		return fmt.Errorf("failed to run users column migration: %w", err)
	}

	// Ensure user named 'admin' is actually an admin
	_, err = DB.Exec("UPDATE users SET is_admin = TRUE WHERE username = 'admin'")
	if err != nil {
		return fmt.Errorf("failed to ensure admin user has admin flag: %w", err)
	}

	mediaSQL := `
	CREATE TABLE IF NOT EXISTS media (
		id SERIAL PRIMARY KEY,
		media_type VARCHAR(20) NOT NULL,
		tmdb_id INTEGER NOT NULL,
		service_url TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (media_type, tmdb_id)
	);
	`
	_, err = DB.Exec(mediaSQL)
	if err != nil {
		return fmt.Errorf("failed to run media migration: %w", err)
	}

	issuesSQL := `
	CREATE TABLE IF NOT EXISTS issues (
		id SERIAL PRIMARY KEY,
		issue_type INTEGER NOT NULL,
		status INTEGER NOT NULL DEFAULT 1,
		problem_season INTEGER NOT NULL DEFAULT 0,
		problem_episode INTEGER NOT NULL DEFAULT 0,
		media_id INTEGER NOT NULL REFERENCES media(id),
		created_by INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_issues_created_at ON issues (created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_issues_updated_at ON issues (updated_at DESC);
	`
	_, err = DB.Exec(issuesSQL)
	if err != nil {
		return fmt.Errorf("failed to run issues migration: %w", err)
	}

	commentsSQL := `
	CREATE TABLE IF NOT EXISTS issue_comments (
		id SERIAL PRIMARY KEY,
		issue_id INTEGER NOT NULL REFERENCES issues(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id),
		message TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_issue_comments_issue_id ON issue_comments (issue_id);
	`
	_, err = DB.Exec(commentsSQL)
	if err != nil {
		return fmt.Errorf("failed to run issue_comments migration: %w", err)
	}

	return nil
}
