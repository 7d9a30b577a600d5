package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Masood-zone/CMS--full/app/models"
)

func scanStudent(row interface {
	Scan(dest ...interface{}) error
}) (*models.Student, error) {
	s := &models.Student{}
	var age sql.NullInt64
	var gender, parentPhone sql.NullString
	err := row.Scan(&s.ID, &s.Name, &age, &gender, &parentPhone, &s.ClassID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Age = int(age.Int64)
	s.Gender = models.Gender(gender.String)
	s.ParentPhone = parentPhone.String
	return s, nil
}

// GetAllStudents retrieves every enrolled student ordered by name
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, name, age, gender, parent_phone, class_id, created_at, updated_at
			  FROM students ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentsByClass retrieves the students enrolled in one class
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT id, name, age, gender, parent_phone, class_id, created_at, updated_at
			  FROM students WHERE class_id = $1 ORDER BY name ASC`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns (nil, nil) when the student does not exist.
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT id, name, age, gender, parent_phone, class_id, created_at, updated_at
			  FROM students WHERE id = $1`
	s, err := scanStudent(db.QueryRow(query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (name, age, gender, parent_phone, class_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, student.Name, student.Age, student.Gender, student.ParentPhone, student.ClassID).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %v", err)
	}
	return nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET name = $1, age = $2, gender = $3, parent_phone = $4, class_id = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`
	err := db.QueryRow(query, student.Name, student.Age, student.Gender, student.ParentPhone,
		student.ClassID, student.ID).Scan(&student.UpdatedAt)
	return err
}

func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MissingStudents returns the subset of ids that do not exist in the
// students table, preserving input order.
func MissingStudents(db *sql.DB, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := db.Query(`SELECT id FROM students WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
