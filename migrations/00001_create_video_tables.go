package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateVideoTables, downCreateVideoTables)
}

func upCreateVideoTables(tx *sql.Tx) error {
	createVideoTable := `
	CREATE TABLE videos (
		video_id UUID PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		description TEXT,
		filename VARCHAR(500),
		user_id VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL,
		video_url VARCHAR(1000),
		preview_url VARCHAR(1000),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createVideoTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}

	createVideoQualityTable := `
	CREATE TABLE video_qualities (
		quality_id UUID PRIMARY KEY,
		video_id UUID NOT NULL REFERENCES videos(video_id),
		quality VARCHAR(10) NOT NULL,
		storage_path VARCHAR(1000) NOT NULL,
		file_size BIGINT NOT NULL,
		duration INTEGER NOT NULL,
		bitrate_video INTEGER,
		bitrate_audio INTEGER,
		resolution VARCHAR(20) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE (video_id, quality)
	);
	`
	if _, err := tx.Exec(createVideoQualityTable); err != nil {
		return fmt.Errorf("could not create video_qualities table: %w", err)
	}

	createIndexes := `
	CREATE INDEX idx_videos_user_id ON videos(user_id);
	CREATE INDEX idx_video_qualities_video_id ON video_qualities(video_id);
	`
	if _, err := tx.Exec(createIndexes); err != nil {
		return fmt.Errorf("could not create indexes: %w", err)
	}

	return nil
}

func downCreateVideoTables(tx *sql.Tx) error {
	if _, err := tx.Exec(`DROP TABLE IF EXISTS video_qualities;`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DROP TABLE IF EXISTS videos;`); err != nil {
		return err
	}
	return nil
}
