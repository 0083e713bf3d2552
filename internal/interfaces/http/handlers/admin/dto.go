package admin

import (
	"github.com/sanathkumar-crypto/issue-tracker/internal/application/admin/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/hospital"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/team"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type SubcategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type HospitalRequest struct {
	Name string `json:"name" binding:"required"`
	Zone string `json:"zone"`
}

type BulkAddHospitalsRequest struct {
	Text string `json:"text" binding:"required"`
}

type BulkAddHospitalsResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

type AddTeamMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SetUserRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type HospitalResponse struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

func toHospitalResponses(hospitals []*hospital.Hospital) []HospitalResponse {
	out := make([]HospitalResponse, 0, len(hospitals))
	for _, h := range hospitals {
		out = append(out, HospitalResponse{Name: h.Name, Zone: h.Zone})
	}
	return out
}

type TeamMemberResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toTeamMemberResponse(m *team.Member) TeamMemberResponse {
	return TeamMemberResponse{UID: m.UID, Name: m.Name, Email: m.Email}
}

func toTeamMemberResponses(members []*team.Member) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toTeamMemberResponse(m))
	}
	return out
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.String(),
	}
}

func toUserResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type OverviewResponse struct {
	Categories map[string][]string  `json:"categories"`
	Hospitals  []HospitalResponse   `json:"hospitals"`
	Team       []TeamMemberResponse `json:"team"`
	Users      []UserResponse       `json:"users"`
}

func toOverviewResponse(r *usecases.OverviewResult) OverviewResponse {
	return OverviewResponse{
		Categories: r.Categories,
		Hospitals:  toHospitalResponses(r.Hospitals),
		Team:       toTeamMemberResponses(r.Team),
		Users:      toUserResponses(r.Users),
	}
}
