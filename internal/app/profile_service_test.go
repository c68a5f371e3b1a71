package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/mocks"
)

func TestProfileService_Get(t *testing.T) {
	t.Parallel()
	client := mocks.NewMockProfileClient(t)
	svc := NewProfileService(client, discardLogger())

	client.EXPECT().GetProfile(mock.Anything).Return(nil, domain.ErrUnauthenticated)

	if _, err := svc.Get(context.Background()); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("Get() error = %v, want ErrUnauthenticated", err)
	}
}

func TestProfileService_Update(t *testing.T) {
	t.Parallel()

	t.Run("normalizes before saving", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockProfileClient(t)
		svc := NewProfileService(client, discardLogger())

		want := user.ProfileUpdate{Name: "Ana", Email: "ana@example.com", Department: "Finance", Phone: "+62 812"}
		client.EXPECT().UpdateProfile(mock.Anything, want).Return(&user.User{ID: "u1", Name: "Ana"}, nil)

		got, err := svc.Update(context.Background(), user.ProfileUpdate{
			Name: " Ana ", Email: " ANA@example.com", Department: "Finance ", Phone: " +62 812 ",
		})
		if err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}
		if got.ID != "u1" {
			t.Errorf("Update() ID = %q, want u1", got.ID)
		}
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(mocks.NewMockProfileClient(t), discardLogger())

		_, err := svc.Update(context.Background(), user.ProfileUpdate{Name: "Ana", Email: "ana@example.com", Phone: "call me"})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Update() error = %v, want ValidationError", err)
		}
		if _, ok := verr.Fields["phone"]; !ok {
			t.Errorf("Fields = %v, want phone error", verr.Fields)
		}
	})
}

func TestProfileService_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("rejects reuse of current password", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(mocks.NewMockProfileClient(t), discardLogger())

		err := svc.ChangePassword(context.Background(), user.PasswordChange{
			Current: "samesame1", New: "samesame1", Confirm: "samesame1",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ChangePassword() error = %v, want ErrValidation", err)
		}
	})

	t.Run("submits valid change", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockProfileClient(t)
		svc := NewProfileService(client, discardLogger())

		change := user.PasswordChange{Current: "oldpassword", New: "newpassword", Confirm: "newpassword"}
		client.EXPECT().ChangePassword(mock.Anything, change).Return(domain.ErrUnauthenticated)

		if err := svc.ChangePassword(context.Background(), change); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("ChangePassword() error = %v, want ErrUnauthenticated", err)
		}
	})
}
