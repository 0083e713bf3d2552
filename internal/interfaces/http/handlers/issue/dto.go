package issue

import (
	"github.com/sanathkumar-crypto/issue-tracker/internal/application/issue/usecases"
	domain "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
)

type CreateIssueRequest struct {
	HospitalUnit     string   `json:"hospitalUnit" validate:"required"`
	Zone             string   `json:"zone"`
	Priority         string   `json:"priority"`
	MainCategory     string   `json:"mainCategory" validate:"required"`
	SubCategory      string   `json:"subCategory"`
	OtherSubCategory string   `json:"otherSubCategory"`
	TaskName         string   `json:"taskName" validate:"required"`
	Description      string   `json:"description"`
	MainOwner        string   `json:"mainOwner"`
	CoOwners         []string `json:"coOwners"`
	DueDate          string   `json:"dueDate"`
}

func (r CreateIssueRequest) ToCommand(actorName string) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		HospitalUnit:     r.HospitalUnit,
		Zone:             r.Zone,
		Priority:         r.Priority,
		MainCategory:     r.MainCategory,
		SubCategory:      r.SubCategory,
		OtherSubCategory: r.OtherSubCategory,
		TaskName:         r.TaskName,
		Description:      r.Description,
		MainOwner:        r.MainOwner,
		CoOwners:         r.CoOwners,
		DueDate:          r.DueDate,
		ActorName:        actorName,
	}
}

type UpdateIssueRequest struct {
	HospitalUnit string   `json:"hospitalUnit" validate:"required"`
	Zone         string   `json:"zone"`
	Priority     string   `json:"priority"`
	Category     string   `json:"category" validate:"required"`
	TaskName     string   `json:"taskName" validate:"required"`
	Description  string   `json:"description"`
	MainOwner    string   `json:"mainOwner"`
	CoOwners     []string `json:"coOwners"`
	DueDate      string   `json:"dueDate"`
	StepsTaken   string   `json:"stepsTaken"`
	ReviewNotes  string   `json:"reviewNotes"`
}

func (r UpdateIssueRequest) ToCommand(issueID, actorName string) usecases.UpdateIssueCommand {
	return usecases.UpdateIssueCommand{
		IssueID:      issueID,
		HospitalUnit: r.HospitalUnit,
		Zone:         r.Zone,
		Priority:     r.Priority,
		Category:     r.Category,
		TaskName:     r.TaskName,
		Description:  r.Description,
		MainOwner:    r.MainOwner,
		CoOwners:     r.CoOwners,
		DueDate:      r.DueDate,
		StepsTaken:   r.StepsTaken,
		ReviewNotes:  r.ReviewNotes,
		ActorName:    actorName,
	}
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type IssueResponse struct {
	ID             string   `json:"id"`
	HospitalUnit   string   `json:"hospitalUnit"`
	Zone           string   `json:"zone"`
	Priority       string   `json:"priority"`
	Category       string   `json:"category"`
	TaskName       string   `json:"taskName"`
	Description    string   `json:"description"`
	MainOwner      string   `json:"mainOwner"`
	CoOwners       []string `json:"coOwners"`
	DueDate        string   `json:"dueDate"`
	Status         string   `json:"status"`
	DateLogged     string   `json:"dateLogged"`
	DateClosed     string   `json:"dateClosed"`
	CreatedBy      string   `json:"createdBy"`
	LastModified   string   `json:"lastModified"`
	LastModifiedBy string   `json:"lastModifiedBy"`
	ResolvedBy     string   `json:"resolvedBy"`
	StepsTaken     string   `json:"stepsTaken"`
	ReviewNotes    string   `json:"reviewNotes"`
	IsClosed       bool     `json:"isClosed"`
}

func toIssueResponse(i *domain.Issue) IssueResponse {
	coOwners := i.CoOwners
	if coOwners == nil {
		coOwners = []string{}
	}
	return IssueResponse{
		ID:             i.ID,
		HospitalUnit:   i.HospitalUnit,
		Zone:           i.Zone,
		Priority:       i.Priority.String(),
		Category:       i.Category,
		TaskName:       i.TaskName,
		Description:    i.Description,
		MainOwner:      i.MainOwner,
		CoOwners:       coOwners,
		DueDate:        i.DueDate,
		Status:         i.Status.String(),
		DateLogged:     i.DateLogged,
		DateClosed:     i.DateClosed,
		CreatedBy:      i.CreatedBy,
		LastModified:   i.LastModified,
		LastModifiedBy: i.LastModifiedBy,
		ResolvedBy:     i.ResolvedBy,
		StepsTaken:     i.StepsTaken,
		ReviewNotes:    i.ReviewNotes,
		IsClosed:       i.IsClosed(),
	}
}

func toIssueResponses(issues []*domain.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, toIssueResponse(i))
	}
	return out
}

type CreateIssueResponse struct {
	IssueID    string `json:"issueId"`
	Status     string `json:"status"`
	DateLogged string `json:"dateLogged"`
}

type CloseIssueResponse struct {
	AlreadyClosed bool   `json:"alreadyClosed"`
	DateClosed    string `json:"dateClosed"`
}

type CommentResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Timestamp   string `json:"timestamp"`
}

type HistoryResponse struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type AttachmentResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadURL"`
	UploadedBy  string `json:"uploadedBy"`
	Timestamp   string `json:"timestamp"`
}

type IssueDetailResponse struct {
	Issue        IssueResponse        `json:"issue"`
	CreatorEmail string               `json:"creatorEmail"`
	Comments     []CommentResponse    `json:"comments"`
	History      []HistoryResponse    `json:"history"`
	Attachments  []AttachmentResponse `json:"attachments"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		Text:        c.Text,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Timestamp:   c.Timestamp,
	}
}

func toAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID,
		FileName:    a.FileName,
		DownloadURL: a.DownloadURL,
		UploadedBy:  a.UploadedBy,
		Timestamp:   a.Timestamp,
	}
}

func toIssueDetailResponse(r *usecases.GetIssueResult) IssueDetailResponse {
	comments := make([]CommentResponse, 0, len(r.Comments))
	for _, c := range r.Comments {
		comments = append(comments, toCommentResponse(c))
	}
	history := make([]HistoryResponse, 0, len(r.History))
	for _, e := range r.History {
		history = append(history, HistoryResponse{
			ID:        e.ID,
			User:      e.User,
			Action:    e.Action,
			Timestamp: e.Timestamp,
		})
	}
	attachments := make([]AttachmentResponse, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, toAttachmentResponse(a))
	}
	return IssueDetailResponse{
		Issue:        toIssueResponse(r.Issue),
		CreatorEmail: r.CreatorEmail,
		Comments:     comments,
		History:      history,
		Attachments:  attachments,
	}
}
