// ABOUTME: SQLite database schema for the idea pool and user ideas
// ABOUTME: All tables and indexes are created once at Open, never at request time
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Curated idea pool (candidate records for similarity ranking)
CREATE TABLE IF NOT EXISTS ideas_pool (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    source TEXT NOT NULL DEFAULT '',
    popularity_score REAL NOT NULL DEFAULT 0,
    embedding BLOB,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ideas_pool_category ON ideas_pool(category);

-- User draft ideas (similarity query sources)
CREATE TABLE IF NOT EXISTS user_ideas (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    embedding BLOB,
    similar_ideas TEXT NOT NULL DEFAULT '[]',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_user_ideas_user ON user_ideas(user_id);

-- Grading submissions, one per validator per idea
CREATE TABLE IF NOT EXISTS idea_validations (
    id TEXT PRIMARY KEY,
    idea_id TEXT NOT NULL REFERENCES user_ideas(id) ON DELETE CASCADE,
    validator_id TEXT NOT NULL,
    market_fit_score REAL NOT NULL,
    feasibility_score REAL NOT NULL,
    innovation_score REAL NOT NULL,
    scalability_score REAL NOT NULL,
    overall_score REAL NOT NULL,
    feedback TEXT NOT NULL DEFAULT '',
    is_anonymous INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(idea_id, validator_id)
);

CREATE INDEX IF NOT EXISTS idx_validations_idea ON idea_validations(idea_id);
`
