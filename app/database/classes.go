package database

import (
	"database/sql"
	"fmt"

	"github.com/Masood-zone/CMS--full/app/models"
)

// GetAllClasses retrieves all classes with their student counts
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, COALESCE(c.description, ''), c.supervisor_id,
			  c.created_at, c.updated_at, COUNT(s.id)
			  FROM classes c
			  LEFT JOIN students s ON s.class_id = c.id
			  GROUP BY c.id
			  ORDER BY c.name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SupervisorID,
			&c.CreatedAt, &c.UpdatedAt, &c.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// GetClassByID retrieves one class with its supervisor and enrolled students.
// Returns (nil, nil) when the class does not exist.
func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	c := &models.Class{}
	var supName, supEmail sql.NullString
	query := `SELECT c.id, c.name, COALESCE(c.description, ''), c.supervisor_id,
			  c.created_at, c.updated_at, u.name, u.email
			  FROM classes c
			  LEFT JOIN users u ON u.id = c.supervisor_id
			  WHERE c.id = $1`
	err := db.QueryRow(query, classID).Scan(&c.ID, &c.Name, &c.Description, &c.SupervisorID,
		&c.CreatedAt, &c.UpdatedAt, &supName, &supEmail)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.SupervisorID != nil {
		c.Supervisor = &models.User{ID: *c.SupervisorID, Name: supName.String, Email: supEmail.String}
	}

	students, err := GetStudentsByClass(db, classID)
	if err != nil {
		return nil, err
	}
	c.Students = students
	c.StudentCount = len(students)
	return c, nil
}

func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, description, supervisor_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, class.Name, class.Description, class.SupervisorID).
		Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create class: %v", err)
	}
	return nil
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, description = $2, supervisor_id = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING updated_at`
	err := db.QueryRow(query, class.Name, class.Description, class.SupervisorID, class.ID).
		Scan(&class.UpdatedAt)
	if err == sql.ErrNoRows {
		return sql.ErrNoRows
	}
	return err
}

func DeleteClass(db *sql.DB, classID string) error {
	result, err := db.Exec(`DELETE FROM classes WHERE id = $1`, classID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetClassBySupervisor finds the class a teacher supervises, if any.
func GetClassBySupervisor(db *sql.DB, supervisorID string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, COALESCE(description, ''), supervisor_id, created_at, updated_at
			  FROM classes WHERE supervisor_id = $1`
	err := db.QueryRow(query, supervisorID).Scan(&c.ID, &c.Name, &c.Description,
		&c.SupervisorID, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ClassExists reports whether a class id is present.
func ClassExists(db *sql.DB, classID string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1)`, classID).Scan(&exists)
	return exists, err
}

// GetClassesWithStudents resolves the roster: every class with its enrolled
// students, or a single class when classID is non-empty.
func GetClassesWithStudents(db *sql.DB, classID string) ([]*models.Class, error) {
	query := `SELECT id, name, COALESCE(description, ''), supervisor_id, created_at, updated_at
			  FROM classes`
	args := []interface{}{}
	if classID != "" {
		query += ` WHERE id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SupervisorID,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, c := range classes {
		students, err := GetStudentsByClass(db, c.ID)
		if err != nil {
			return nil, err
		}
		c.Students = students
		c.StudentCount = len(students)
	}
	return classes, nil
}
