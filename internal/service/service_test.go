package service

import (
	"context"
	"errors"
	"testing"

	"promptvault/internal/auth"
	"promptvault/internal/config"
	"promptvault/internal/entity"
	"promptvault/internal/model"
	"promptvault/internal/model/memory"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*PromptService, model.Repository) {
	t.Helper()
	auth.BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { auth.BcryptCost = bcrypt.DefaultCost })

	repo := memory.NewRepository()
	user, err := model.SeedDefaults(context.Background(), repo, config.Config{})
	if err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	return NewPromptService(repo, user.ID), repo
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func tagsPtr(v ...string) *[]string { return &v }

func tagNames(detail *entity.PromptWithDetails) []string {
	names := make([]string, 0, len(detail.Tags))
	for _, tag := range detail.Tags {
		names = append(names, tag.Name)
	}
	return names
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func mustCreate(t *testing.T, svc *PromptService, req entity.PromptCreateRequest) *entity.PromptWithDetails {
	t.Helper()
	detail, err := svc.CreatePrompt(context.Background(), req)
	if err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	return detail
}

func TestCreatePromptRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created := mustCreate(t, svc, entity.PromptCreateRequest{
		Title:      "T",
		Content:    "C",
		CategoryID: 1,
		UserID:     1,
		IsPublic:   boolPtr(true),
		Tags:       []string{"x", "y"},
	})

	detail, err := svc.Detail(ctx, created.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Title != "T" || detail.Content != "C" || !detail.IsPublic {
		t.Fatalf("unexpected fields: %+v", detail)
	}
	if detail.Category.ID != 1 || detail.Category.Name != "Creative Writing" {
		t.Fatalf("unexpected category: %+v", detail.Category)
	}
	if detail.User.ID != 1 || detail.User.Username != "John Doe" {
		t.Fatalf("unexpected user: %+v", detail.User)
	}
	if got := tagNames(detail); !equalNames(got, []string{"x", "y"}) {
		t.Fatalf("unexpected tags: %v", got)
	}
	if detail.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be stamped")
	}
}

func TestCreatePromptDeduplicatesTagNames(t *testing.T) {
	svc, _ := newTestService(t)

	detail := mustCreate(t, svc, entity.PromptCreateRequest{
		Title:      "Story",
		Content:    "Once upon a time",
		CategoryID: 1,
		Tags:       []string{"Coding", "coding", "  ", "new-tag", "NEW-TAG"},
	})

	// 已有标签保留原始拼写
	if got := tagNames(detail); !equalNames(got, []string{"coding", "new-tag"}) {
		t.Fatalf("unexpected tags: %v", got)
	}
}

func TestCreatePromptDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	detail := mustCreate(t, svc, entity.PromptCreateRequest{Title: "t", Content: "c", CategoryID: 2})
	if !detail.IsPublic {
		t.Fatal("isPublic should default to true")
	}
	if detail.UserID != 1 {
		t.Fatalf("expected default user, got %d", detail.UserID)
	}
	if detail.Tags == nil || len(detail.Tags) != 0 {
		t.Fatalf("expected empty tag list, got %#v", detail.Tags)
	}
}

func TestCreatePromptValidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  entity.PromptCreateRequest
		want error
	}{
		{"blank title", entity.PromptCreateRequest{Title: "  ", Content: "c", CategoryID: 1}, ErrMissingField},
		{"blank content", entity.PromptCreateRequest{Title: "t", Content: "", CategoryID: 1}, ErrMissingField},
		{"missing category", entity.PromptCreateRequest{Title: "t", Content: "c"}, ErrMissingField},
		{"unknown category", entity.PromptCreateRequest{Title: "t", Content: "c", CategoryID: 99}, ErrInvalidCategory},
		{"unknown user", entity.PromptCreateRequest{Title: "t", Content: "c", CategoryID: 1, UserID: 42}, ErrInvalidUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePrompt(ctx, tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	prompts, _ := repo.ListPrompts(ctx)
	if len(prompts) != 0 {
		t.Fatalf("validation failures must not store prompts, got %d", len(prompts))
	}
}

func TestUpdatePromptTagSync(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	created := mustCreate(t, svc, entity.PromptCreateRequest{
		Title: "t", Content: "c", CategoryID: 1, Tags: []string{"x", "y"},
	})

	updated, err := svc.UpdatePrompt(ctx, created.ID, entity.PromptUpdateRequest{Tags: tagsPtr("Y", "z")})
	if err != nil {
		t.Fatalf("UpdatePrompt: %v", err)
	}
	if got := tagNames(updated); !equalNames(got, []string{"y", "z"}) {
		t.Fatalf("expected [y z], got %v", got)
	}

	x, err := repo.GetTagByName(ctx, "x")
	if err != nil {
		t.Fatalf("tag x should still exist: %v", err)
	}
	if ids, _ := repo.PromptIDsForTag(ctx, x.ID); len(ids) != 0 {
		t.Fatalf("x should be detached, got %v", ids)
	}

	t.Run("nil tags leave the set alone", func(t *testing.T) {
		detail, err := svc.UpdatePrompt(ctx, created.ID, entity.PromptUpdateRequest{Title: strPtr("renamed")})
		if err != nil {
			t.Fatalf("UpdatePrompt: %v", err)
		}
		if detail.Title != "renamed" || !equalNames(tagNames(detail), []string{"y", "z"}) {
			t.Fatalf("unexpected detail: %+v", detail)
		}
		if !detail.CreatedAt.Equal(created.CreatedAt) || detail.ID != created.ID {
			t.Fatal("id and createdAt must not change")
		}
	})

	t.Run("empty list clears", func(t *testing.T) {
		detail, err := svc.UpdatePrompt(ctx, created.ID, entity.PromptUpdateRequest{Tags: tagsPtr()})
		if err != nil {
			t.Fatalf("UpdatePrompt: %v", err)
		}
		if len(detail.Tags) != 0 {
			t.Fatalf("expected no tags, got %v", tagNames(detail))
		}
	})
}

func TestUpdatePromptValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created := mustCreate(t, svc, entity.PromptCreateRequest{Title: "t", Content: "c", CategoryID: 1})

	if _, err := svc.UpdatePrompt(ctx, 999, entity.PromptUpdateRequest{}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.UpdatePrompt(ctx, created.ID, entity.PromptUpdateRequest{Title: strPtr(" ")}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	badCategory := uint(77)
	if _, err := svc.UpdatePrompt(ctx, created.ID, entity.PromptUpdateRequest{CategoryID: &badCategory}); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected invalid category, got %v", err)
	}

	detail, err := svc.UpdatePrompt(ctx, created.ID, entity.PromptUpdateRequest{IsPublic: boolPtr(false)})
	if err != nil {
		t.Fatalf("UpdatePrompt: %v", err)
	}
	if detail.IsPublic || detail.Title != "t" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestVisibilityAcrossViews(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	public := mustCreate(t, svc, entity.PromptCreateRequest{
		Title: "Marketing Plan", Content: "Outline a launch", CategoryID: 2, Tags: []string{"marketing"},
	})
	private := mustCreate(t, svc, entity.PromptCreateRequest{
		Title: "Secret plan", Content: "marketing notes", CategoryID: 2, IsPublic: boolPtr(false), Tags: []string{"marketing"},
	})
	marketing, _ := repo.GetTagByName(ctx, "marketing")

	views := map[string]func() ([]entity.PromptWithDetails, error){
		"public":   func() ([]entity.PromptWithDetails, error) { return svc.PublicPrompts(ctx) },
		"category": func() ([]entity.PromptWithDetails, error) { return svc.PromptsByCategory(ctx, 2) },
		"tag":      func() ([]entity.PromptWithDetails, error) { return svc.PromptsByTag(ctx, marketing.ID) },
		"search":   func() ([]entity.PromptWithDetails, error) { return svc.Search(ctx, "PLAN") },
	}
	for name, view := range views {
		t.Run(name, func(t *testing.T) {
			prompts, err := view()
			if err != nil {
				t.Fatalf("view error: %v", err)
			}
			if len(prompts) != 1 || prompts[0].ID != public.ID {
				t.Fatalf("expected only the public prompt, got %+v", prompts)
			}
		})
	}

	owned, err := svc.UserPrompts(ctx, 1)
	if err != nil {
		t.Fatalf("UserPrompts: %v", err)
	}
	if len(owned) != 2 || owned[0].ID != public.ID || owned[1].ID != private.ID {
		t.Fatalf("owner should see both prompts in storage order, got %+v", owned)
	}

	if other, _ := svc.PromptsByCategory(ctx, 3); len(other) != 0 {
		t.Fatalf("expected no prompts in category 3, got %d", len(other))
	}
}

func TestSearchMatchesTitleOrContent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	byTitle := mustCreate(t, svc, entity.PromptCreateRequest{Title: "Haiku Generator", Content: "write poems", CategoryID: 1})
	byContent := mustCreate(t, svc, entity.PromptCreateRequest{Title: "Poetry", Content: "Compose a HAIKU", CategoryID: 1})
	mustCreate(t, svc, entity.PromptCreateRequest{Title: "Unrelated", Content: "nothing here", CategoryID: 1})

	results, err := svc.Search(ctx, "haiku")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 || results[0].ID != byTitle.ID || results[1].ID != byContent.ID {
		t.Fatalf("unexpected results: %+v", results)
	}

	if _, err := svc.Search(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank query, got %v", err)
	}
}

func TestDeletePromptRemovesFromViews(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	detail := mustCreate(t, svc, entity.PromptCreateRequest{
		Title: "Refactor helper", Content: "clean code", CategoryID: 3, Tags: []string{"coding"},
	})
	coding, _ := repo.GetTagByName(ctx, "coding")

	removed, err := svc.DeletePrompt(ctx, detail.ID)
	if err != nil || !removed {
		t.Fatalf("DeletePrompt = %v, %v", removed, err)
	}

	if _, err := svc.Detail(ctx, detail.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	public, _ := svc.PublicPrompts(ctx)
	byCategory, _ := svc.PromptsByCategory(ctx, 3)
	byTag, _ := svc.PromptsByTag(ctx, coding.ID)
	found, _ := svc.Search(ctx, "refactor")
	if len(public)+len(byCategory)+len(byTag)+len(found) != 0 {
		t.Fatal("deleted prompt still visible")
	}
	if ids, _ := repo.PromptIDsForTag(ctx, coding.ID); len(ids) != 0 {
		t.Fatalf("residual associations: %v", ids)
	}

	removed, err = svc.DeletePrompt(ctx, detail.ID)
	if err != nil || removed {
		t.Fatalf("second DeletePrompt = %v, %v", removed, err)
	}
}

func TestDanglingReferencesAreSkipped(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	healthy := mustCreate(t, svc, entity.PromptCreateRequest{Title: "ok", Content: "c", CategoryID: 1})
	orphan := entity.DbPrompt{Title: "orphan", Content: "c", CategoryID: 99, UserID: 1, IsPublic: true}
	if err := repo.CreatePrompt(ctx, &orphan); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	ownerless := entity.DbPrompt{Title: "ownerless", Content: "c", CategoryID: 1, UserID: 50, IsPublic: true}
	if err := repo.CreatePrompt(ctx, &ownerless); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}

	if _, err := svc.Detail(ctx, orphan.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found for orphan, got %v", err)
	}
	prompts, err := svc.PublicPrompts(ctx)
	if err != nil {
		t.Fatalf("PublicPrompts: %v", err)
	}
	if len(prompts) != 1 || prompts[0].ID != healthy.ID {
		t.Fatalf("expected only the healthy prompt, got %+v", prompts)
	}
}

type failingRepo struct {
	model.Repository
	err error
}

func (r failingRepo) ListPrompts(ctx context.Context) ([]entity.DbPrompt, error) {
	return nil, r.err
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	svc := NewPromptService(failingRepo{Repository: memory.NewRepository(), err: boom}, 1)

	if _, err := svc.PublicPrompts(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestEnsureTagAndCreateTag(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	existing, _ := repo.GetTagByName(ctx, "coding")
	tag, err := svc.EnsureTag(ctx, " CODING ")
	if err != nil {
		t.Fatalf("EnsureTag: %v", err)
	}
	if tag.ID != existing.ID {
		t.Fatalf("expected existing tag %d, got %d", existing.ID, tag.ID)
	}

	fresh, err := svc.EnsureTag(ctx, "Prompting")
	if err != nil || fresh.Name != "Prompting" {
		t.Fatalf("EnsureTag new = %+v, %v", fresh, err)
	}

	if _, err := svc.CreateTag(ctx, "prompting"); !errors.Is(err, model.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	if _, err := svc.CreateTag(ctx, ""); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	created, err := svc.CreateTag(ctx, "  research ")
	if err != nil || created.Name != "research" {
		t.Fatalf("CreateTag = %+v, %v", created, err)
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	summary, err := svc.CreateUser(ctx, "ada", "lovelace")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if summary.ID != 2 || summary.Username != "ada" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	stored, _ := repo.GetUser(ctx, summary.ID)
	if stored.Password == "lovelace" || auth.VerifyPassword(stored.Password, "lovelace") != nil {
		t.Fatal("password must be stored as a bcrypt hash")
	}

	if _, err := svc.CreateUser(ctx, "ada", "other"); !errors.Is(err, model.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, "grace", " "); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected missing password, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, "", "pw"); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected missing username, got %v", err)
	}
}

func TestListAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	categories, err := svc.ListCategories(ctx)
	if err != nil || len(categories) != 5 {
		t.Fatalf("ListCategories = %d, %v", len(categories), err)
	}
	tags, err := svc.ListTags(ctx)
	if err != nil || len(tags) != 17 || tags[0].Name != "writing" {
		t.Fatalf("ListTags = %+v, %v", tags, err)
	}
	if category, err := svc.GetCategory(ctx, 4); err != nil || category.Name != "Education" {
		t.Fatalf("GetCategory = %+v, %v", category, err)
	}
	if _, err := svc.GetTag(ctx, 0); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found for tag 0, got %v", err)
	}
	if _, err := svc.GetUser(ctx, 9); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found for user 9, got %v", err)
	}
}
