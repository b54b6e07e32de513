package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// SkillList accepts either a JSON array of strings or one comma-separated
// string and normalizes both to a trimmed, non-empty slice at the
// boundary, before anything downstream sees it.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		*s = normalizeSkills(asArray)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*s = normalizeSkills(strings.Split(asString, ","))
	return nil
}

func normalizeSkills(raw []string) []string {
	skills := make([]string, 0, len(raw))
	for _, skill := range raw {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

type UpsertCandidateProfileRequest struct {
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	Bio      string    `json:"bio"`
	Skills   SkillList `json:"skills"`
}

type UpsertEmployerProfileRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type CVResponse struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}
