package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
)

type hierarchyFixture struct {
	projects  *repositories.MemoryProjectRepository
	boards    *repositories.MemoryTaskBoardRepository
	tasks     *repositories.MemoryTaskRepository
	hierarchy *HierarchyService
}

func newHierarchyFixture() *hierarchyFixture {
	projects := repositories.NewMemoryProjectRepository()
	boards := repositories.NewMemoryTaskBoardRepository()
	tasks := repositories.NewMemoryTaskRepository()
	return &hierarchyFixture{
		projects:  projects,
		boards:    boards,
		tasks:     tasks,
		hierarchy: NewHierarchyService(projects, boards, tasks),
	}
}

func (f *hierarchyFixture) createProject(t *testing.T, owner primitive.ObjectID) *models.Project {
	t.Helper()
	project, err := f.projects.Create(context.Background(), &models.Project{
		Name:        "P1",
		Description: "d",
		UserID:      owner,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func countID(ids []primitive.ObjectID, id primitive.ObjectID) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}

func TestAttachTaskBoardRecordsReferenceExactlyOnce(t *testing.T) {
	f := newHierarchyFixture()
	ctx := context.Background()
	project := f.createProject(t, primitive.NewObjectID())

	board, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "TB1"})
	if err != nil {
		t.Fatalf("attach task board: %v", err)
	}

	got, err := f.projects.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if n := countID(got.TaskBoards, board.ID); n != 1 {
		t.Fatalf("expected board id to appear exactly once, got %d", n)
	}
}

func TestDetachTaskBoardRemovesReferenceAndTasks(t *testing.T) {
	f := newHierarchyFixture()
	ctx := context.Background()
	project := f.createProject(t, primitive.NewObjectID())

	board, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "TB1"})
	if err != nil {
		t.Fatalf("attach task board: %v", err)
	}
	task, err := f.hierarchy.AttachTask(ctx, &models.Task{TaskBoardID: board.ID, Name: "T1", Status: models.StatusBacklog})
	if err != nil {
		t.Fatalf("attach task: %v", err)
	}

	if err := f.hierarchy.DetachTaskBoard(ctx, board); err != nil {
		t.Fatalf("detach task board: %v", err)
	}

	got, err := f.projects.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if countID(got.TaskBoards, board.ID) != 0 {
		t.Fatalf("expected board reference to be gone from project")
	}

	if gone, _ := f.boards.GetByID(ctx, board.ID); gone != nil {
		t.Fatalf("expected board row to be deleted")
	}
	if gone, _ := f.tasks.GetByID(ctx, task.ID); gone != nil {
		t.Fatalf("expected the board's tasks to be deleted")
	}
}

func TestMoveTaskBetweenBoards(t *testing.T) {
	f := newHierarchyFixture()
	ctx := context.Background()
	project := f.createProject(t, primitive.NewObjectID())

	boardA, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "A"})
	if err != nil {
		t.Fatalf("attach board A: %v", err)
	}
	boardB, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "B"})
	if err != nil {
		t.Fatalf("attach board B: %v", err)
	}
	task, err := f.hierarchy.AttachTask(ctx, &models.Task{TaskBoardID: boardA.ID, Name: "T1", Status: models.StatusBacklog})
	if err != nil {
		t.Fatalf("attach task: %v", err)
	}

	if err := f.hierarchy.MoveTask(ctx, task, boardB.ID); err != nil {
		t.Fatalf("move task: %v", err)
	}

	gotA, _ := f.boards.GetByID(ctx, boardA.ID)
	if countID(gotA.Tasks, task.ID) != 0 {
		t.Fatalf("expected task to be gone from board A")
	}
	gotB, _ := f.boards.GetByID(ctx, boardB.ID)
	if n := countID(gotB.Tasks, task.ID); n != 1 {
		t.Fatalf("expected task to appear exactly once on board B, got %d", n)
	}

	gotTask, _ := f.tasks.GetByID(ctx, task.ID)
	if gotTask.TaskBoardID != boardB.ID {
		t.Fatalf("expected task back-reference to point at board B")
	}
}

func TestCascadeDeleteProjectRemovesDescendants(t *testing.T) {
	f := newHierarchyFixture()
	ctx := context.Background()
	project := f.createProject(t, primitive.NewObjectID())

	board, err := f.hierarchy.AttachTaskBoard(ctx, &models.TaskBoard{ProjectID: project.ID, Name: "TB1"})
	if err != nil {
		t.Fatalf("attach task board: %v", err)
	}
	task, err := f.hierarchy.AttachTask(ctx, &models.Task{TaskBoardID: board.ID, Name: "T1", Status: models.StatusBacklog})
	if err != nil {
		t.Fatalf("attach task: %v", err)
	}

	if err := f.hierarchy.CascadeDeleteProject(ctx, project); err != nil {
		t.Fatalf("cascade delete project: %v", err)
	}

	if gone, _ := f.projects.GetByID(ctx, project.ID); gone != nil {
		t.Fatalf("expected project to be deleted")
	}
	if gone, _ := f.boards.GetByID(ctx, board.ID); gone != nil {
		t.Fatalf("expected board to be deleted")
	}
	if gone, _ := f.tasks.GetByID(ctx, task.ID); gone != nil {
		t.Fatalf("expected task to be deleted")
	}
}
