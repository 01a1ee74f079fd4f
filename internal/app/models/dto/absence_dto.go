package dto

// AddAbsencesRequest records a set of teachers absent on one day
type AddAbsencesRequest struct {
	Teachers []int64 `json:"teachers" binding:"required,min=1"`
	Day      string  `json:"day" binding:"required,datetime=2006-01-02"`
}

// AbsentTeacherInfo is the expanded teacher reference inside an absence
// record; nil when the referenced user no longer exists.
type AbsentTeacherInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// AbsenceResponse represents one absence record with its teacher expanded
type AbsenceResponse struct {
	ID      int64              `json:"id"`
	Day     string             `json:"day"`
	Teacher *AbsentTeacherInfo `json:"teacher"`
}
