package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
)

// ListSkills retrieves the skill catalog ordered by name.
func (db *DB) ListSkills(ctx context.Context) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), created_at FROM skills ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]types.Skill, 0)
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// ListStudentSkills retrieves a student's skills joined with the catalog.
func (db *DB) ListStudentSkills(ctx context.Context, studentID uuid.UUID) ([]types.StudentSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ss.id, ss.student_id, ss.skill_id, sk.name,
		        COALESCE(sk.category, ''), COALESCE(ss.proficiency_level, ''),
		        COALESCE(ss.verified, false), ss.created_at
		 FROM student_skills ss
		 JOIN skills sk ON sk.id = ss.skill_id
		 WHERE ss.student_id = $1
		 ORDER BY sk.name`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list student skills: %w", err)
	}
	defer rows.Close()

	skills := make([]types.StudentSkill, 0)
	for rows.Next() {
		var s types.StudentSkill
		if err := rows.Scan(&s.ID, &s.StudentID, &s.SkillID, &s.Name,
			&s.Category, &s.ProficiencyLevel, &s.Verified, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// AddStudentSkill attaches a catalog skill to a student profile.
// Returns ErrUniqueViolation when the (student, skill) pair already exists.
func (db *DB) AddStudentSkill(ctx context.Context, studentID uuid.UUID, req *types.AddSkillRequest) (*types.StudentSkill, error) {
	var s types.StudentSkill
	err := db.pool.QueryRow(ctx,
		`WITH ins AS (
		   INSERT INTO student_skills (student_id, skill_id, proficiency_level)
		   VALUES ($1, $2, $3)
		   RETURNING id, student_id, skill_id, proficiency_level, verified, created_at
		 )
		 SELECT ins.id, ins.student_id, ins.skill_id, sk.name,
		        COALESCE(sk.category, ''), COALESCE(ins.proficiency_level, ''),
		        COALESCE(ins.verified, false), ins.created_at
		 FROM ins JOIN skills sk ON sk.id = ins.skill_id`,
		studentID, req.SkillID, req.ProficiencyLevel,
	).Scan(&s.ID, &s.StudentID, &s.SkillID, &s.Name, &s.Category,
		&s.ProficiencyLevel, &s.Verified, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add student skill: %w", mapUniqueViolation(err))
	}
	return &s, nil
}

// RemoveStudentSkill detaches a skill from a student profile. Returns false
// when the pair did not exist.
func (db *DB) RemoveStudentSkill(ctx context.Context, studentID, skillID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM student_skills WHERE student_id = $1 AND skill_id = $2`,
		studentID, skillID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove student skill: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
