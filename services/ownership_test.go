package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
)

// Ownership is re-derived by walking the stored hierarchy on every mutating
// call. These tests cover the error precedence: id syntax before existence
// before ownership.

func TestProjectOwnershipErrorPrecedence(t *testing.T) {
	f := newHierarchyFixture()
	svc := NewProjectService(f.projects, f.hierarchy)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	project := f.createProject(t, owner)

	if _, err := svc.GetOwned(ctx, "not-a-hex-id", owner); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetOwned(ctx, primitive.NewObjectID().Hex(), owner); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetOwned(ctx, project.ID.Hex(), intruder); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetOwned(ctx, project.ID.Hex(), owner); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
}

func TestUpdateByNonOwnerLeavesProjectUnchanged(t *testing.T) {
	f := newHierarchyFixture()
	svc := NewProjectService(f.projects, f.hierarchy)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	project := f.createProject(t, owner)

	name := "hijacked"
	_, err := svc.Update(ctx, project.ID.Hex(), intruder, &name, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, _ := f.projects.GetByID(ctx, project.ID)
	if got.Name != "P1" {
		t.Fatalf("expected project to be unchanged, got name %q", got.Name)
	}
}

func TestDeleteByNonOwnerForbidden(t *testing.T) {
	f := newHierarchyFixture()
	svc := NewProjectService(f.projects, f.hierarchy)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	project := f.createProject(t, owner)

	if err := svc.Delete(ctx, project.ID.Hex(), primitive.NewObjectID()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if got, _ := f.projects.GetByID(ctx, project.ID); got == nil {
		t.Fatalf("expected project to survive the forbidden delete")
	}
}

func TestTaskOwnershipResolvedThroughChain(t *testing.T) {
	f := newHierarchyFixture()
	taskSvc := NewTaskService(f.projects, f.boards, f.tasks, f.hierarchy)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	project := f.createProject(t, owner)

	board, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "TB1"})
	if err != nil {
		t.Fatalf("attach board: %v", err)
	}

	task, err := taskSvc.Create(ctx, board.ID.Hex(), owner, CreateTaskInput{
		Name:        "T1",
		Description: "d",
		DueDate:     time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != models.StatusBacklog {
		t.Fatalf("expected default status Backlog, got %q", task.Status)
	}

	// The task itself carries no owner; the intruder is rejected by walking
	// task -> board -> project.
	if _, err := taskSvc.Get(ctx, task.ID.Hex(), intruder); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := taskSvc.Delete(ctx, task.ID.Hex(), intruder); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateTaskRejectsUnknownStatusAndMissingDueDate(t *testing.T) {
	f := newHierarchyFixture()
	taskSvc := NewTaskService(f.projects, f.boards, f.tasks, f.hierarchy)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	project := f.createProject(t, owner)
	board, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "TB1"})
	if err != nil {
		t.Fatalf("attach board: %v", err)
	}

	_, err = taskSvc.Create(ctx, board.ID.Hex(), owner, CreateTaskInput{
		Name: "T1", Description: "d", Status: "Shipped", DueDate: time.Now(),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}

	_, err = taskSvc.Create(ctx, board.ID.Hex(), owner, CreateTaskInput{
		Name: "T1", Description: "d",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing due date, got %v", err)
	}
}

func TestMoveTaskRequiresOwnedTargetBoard(t *testing.T) {
	f := newHierarchyFixture()
	taskSvc := NewTaskService(f.projects, f.boards, f.tasks, f.hierarchy)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	ownProject := f.createProject(t, owner)
	otherProject, err := f.projects.Create(ctx, &models.Project{Name: "P2", UserID: other})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	ownBoard, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: ownProject.ID, Name: "A"})
	if err != nil {
		t.Fatalf("attach board: %v", err)
	}
	foreignBoard, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: otherProject.ID, Name: "B"})
	if err != nil {
		t.Fatalf("attach board: %v", err)
	}

	task, err := taskSvc.Create(ctx, ownBoard.ID.Hex(), owner, CreateTaskInput{
		Name: "T1", Description: "d", DueDate: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, err := taskSvc.Move(ctx, task.ID.Hex(), foreignBoard.ID.Hex(), owner); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden moving onto a foreign board, got %v", err)
	}

	got, _ := f.tasks.GetByID(ctx, task.ID)
	if got.TaskBoardID != ownBoard.ID {
		t.Fatalf("expected task to stay on its own board after the forbidden move")
	}
}
