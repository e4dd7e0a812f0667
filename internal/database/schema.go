package database

// Schema is the PostgreSQL DDL for email tracking, suggestions and
// follow-ups. Suggestion ids are deterministic, so reprocessing an inbox
// upserts instead of duplicating rows.
const Schema = `
CREATE TABLE IF NOT EXISTS email_records (
  id TEXT PRIMARY KEY,
  thread_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  subject TEXT NOT NULL,
  sender_name TEXT NOT NULL,
  sender_email TEXT NOT NULL,
  company_name TEXT,
  received_date TIMESTAMPTZ NOT NULL,
  body TEXT NOT NULL,
  snippet TEXT,
  is_linkedin_notification BOOLEAN DEFAULT FALSE,
  linkedin_profile_url TEXT,
  created_at TIMESTAMPTZ DEFAULT NOW(),
  updated_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS email_constraints (
  email_id TEXT PRIMARY KEY REFERENCES email_records(id) ON DELETE CASCADE,
  intent TEXT NOT NULL CHECK (intent IN ('schedule_call', 'send_resume', 'deadline', 'technical_assessment', 'multi_step_process', 'linkedin_followup', 'other')),
  constraints_json JSONB NOT NULL,
  constraints_text TEXT,
  action_items TEXT[],
  sender_info JSONB,
  priority TEXT NOT NULL CHECK (priority IN ('high', 'medium', 'low')),
  priority_score INTEGER NOT NULL DEFAULT 0,
  company_category TEXT CHECK (company_category IN ('high', 'medium', 'low', 'unknown')),
  definitive_action TEXT,
  created_at TIMESTAMPTZ DEFAULT NOW(),
  updated_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS email_suggestions (
  id TEXT PRIMARY KEY,
  email_id TEXT NOT NULL REFERENCES email_records(id) ON DELETE CASCADE,
  type TEXT NOT NULL CHECK (type IN ('schedule', 'deadline', 'followup', 'linkedin-followup')),
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  generated_response TEXT,
  time_slots TEXT[],
  attachments_needed TEXT[],
  suggested_time TIMESTAMPTZ,
  deadline TIMESTAMPTZ,
  action_items TEXT[] NOT NULL,
  priority TEXT NOT NULL CHECK (priority IN ('high', 'medium', 'low')),
  linkedin_profile_url TEXT,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed', 'dismissed')),
  created_at TIMESTAMPTZ DEFAULT NOW(),
  updated_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS follow_up_tracking (
  email_id TEXT NOT NULL REFERENCES email_records(id) ON DELETE CASCADE,
  suggestion_id TEXT NOT NULL REFERENCES email_suggestions(id) ON DELETE CASCADE,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed', 'overdue', 'dismissed')),
  deadline TIMESTAMPTZ,
  priority TEXT NOT NULL CHECK (priority IN ('high', 'medium', 'low')),
  reminder_count INTEGER DEFAULT 0,
  completed_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ DEFAULT NOW(),
  updated_at TIMESTAMPTZ DEFAULT NOW(),
  PRIMARY KEY (email_id, suggestion_id)
);

CREATE TABLE IF NOT EXISTS user_preferences (
  user_id TEXT PRIMARY KEY,
  preferences_json JSONB NOT NULL,
  created_at TIMESTAMPTZ DEFAULT NOW(),
  updated_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_email_records_user_id ON email_records(user_id);
CREATE INDEX IF NOT EXISTS idx_email_records_received_date ON email_records(received_date DESC);
CREATE INDEX IF NOT EXISTS idx_email_suggestions_email_id ON email_suggestions(email_id);
CREATE INDEX IF NOT EXISTS idx_email_suggestions_status ON email_suggestions(status);
CREATE INDEX IF NOT EXISTS idx_follow_up_tracking_status ON follow_up_tracking(status);
`
