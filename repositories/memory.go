package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
)

// In-memory repository implementations. They mirror the mongo semantics
// (merge updates, pre-delete snapshots, non-deduplicating pushes) and back
// the service and handler test suites.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	clone := *user
	return &clone, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	r.users[id] = user
	return &user, nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	delete(r.users, id)
	return &user, nil
}

type MemoryProjectRepository struct {
	mu       sync.RWMutex
	projects map[primitive.ObjectID]models.Project
}

func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{projects: make(map[primitive.ObjectID]models.Project)}
}

func (r *MemoryProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	if project.TaskBoards == nil {
		project.TaskBoards = []primitive.ObjectID{}
	}
	r.projects[project.ID] = cloneProject(*project)
	clone := cloneProject(*project)
	return &clone, nil
}

func (r *MemoryProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	clone := cloneProject(project)
	return &clone, nil
}

func (r *MemoryProjectRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := []*models.Project{}
	for _, project := range r.projects {
		if project.UserID == userID {
			clone := cloneProject(project)
			projects = append(projects, &clone)
		}
	}
	return projects, nil
}

func (r *MemoryProjectRepository) Update(ctx context.Context, id primitive.ObjectID, update ProjectUpdate) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	r.projects[id] = project
	clone := cloneProject(project)
	return &clone, nil
}

func (r *MemoryProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	delete(r.projects, id)
	clone := cloneProject(project)
	return &clone, nil
}

func (r *MemoryProjectRepository) AddTaskBoard(ctx context.Context, projectID, taskBoardID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return nil
	}
	project.TaskBoards = append(project.TaskBoards, taskBoardID)
	r.projects[projectID] = project
	return nil
}

func (r *MemoryProjectRepository) RemoveTaskBoard(ctx context.Context, projectID, taskBoardID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return nil
	}
	project.TaskBoards = pullID(project.TaskBoards, taskBoardID)
	r.projects[projectID] = project
	return nil
}

type MemoryTaskBoardRepository struct {
	mu     sync.RWMutex
	boards map[primitive.ObjectID]models.TaskBoard
}

func NewMemoryTaskBoardRepository() *MemoryTaskBoardRepository {
	return &MemoryTaskBoardRepository{boards: make(map[primitive.ObjectID]models.TaskBoard)}
}

func (r *MemoryTaskBoardRepository) Create(ctx context.Context, board *models.TaskBoard) (*models.TaskBoard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if board.ID.IsZero() {
		board.ID = primitive.NewObjectID()
	}
	if board.Tasks == nil {
		board.Tasks = []primitive.ObjectID{}
	}
	r.boards[board.ID] = cloneBoard(*board)
	clone := cloneBoard(*board)
	return &clone, nil
}

func (r *MemoryTaskBoardRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TaskBoard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	board, ok := r.boards[id]
	if !ok {
		return nil, nil
	}
	clone := cloneBoard(board)
	return &clone, nil
}

func (r *MemoryTaskBoardRepository) GetByProject(ctx context.Context, projectID primitive.ObjectID) ([]*models.TaskBoard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	boards := []*models.TaskBoard{}
	for _, board := range r.boards {
		if board.ProjectID == projectID {
			clone := cloneBoard(board)
			boards = append(boards, &clone)
		}
	}
	return boards, nil
}

func (r *MemoryTaskBoardRepository) Update(ctx context.Context, id primitive.ObjectID, update TaskBoardUpdate) (*models.TaskBoard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		board.Name = *update.Name
	}
	r.boards[id] = board
	clone := cloneBoard(board)
	return &clone, nil
}

func (r *MemoryTaskBoardRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.TaskBoard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[id]
	if !ok {
		return nil, nil
	}
	delete(r.boards, id)
	clone := cloneBoard(board)
	return &clone, nil
}

func (r *MemoryTaskBoardRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, board := range r.boards {
		if board.ProjectID == projectID {
			delete(r.boards, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *MemoryTaskBoardRepository) AddTask(ctx context.Context, boardID, taskID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[boardID]
	if !ok {
		return nil
	}
	board.Tasks = append(board.Tasks, taskID)
	r.boards[boardID] = board
	return nil
}

func (r *MemoryTaskBoardRepository) RemoveTask(ctx context.Context, boardID, taskID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[boardID]
	if !ok {
		return nil
	}
	board.Tasks = pullID(board.Tasks, taskID)
	r.boards[boardID] = board
	return nil
}

type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (r *MemoryTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Assignees == nil {
		task.Assignees = []primitive.ObjectID{}
	}
	r.tasks[task.ID] = cloneTask(*task)
	clone := cloneTask(*task)
	return &clone, nil
}

func (r *MemoryTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	clone := cloneTask(task)
	return &clone, nil
}

func (r *MemoryTaskRepository) GetByTaskBoard(ctx context.Context, boardID primitive.ObjectID) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*models.Task{}
	for _, task := range r.tasks {
		if task.TaskBoardID == boardID {
			clone := cloneTask(task)
			tasks = append(tasks, &clone)
		}
	}
	return tasks, nil
}

func (r *MemoryTaskRepository) Update(ctx context.Context, id primitive.ObjectID, update TaskUpdate) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		task.Name = *update.Name
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Tags != nil {
		task.Tags = append([]string{}, (*update.Tags)...)
	}
	if update.DueDate != nil {
		task.DueDate = *update.DueDate
	}
	if update.Assignees != nil {
		task.Assignees = append([]primitive.ObjectID{}, (*update.Assignees)...)
	}
	r.tasks[id] = task
	clone := cloneTask(task)
	return &clone, nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	delete(r.tasks, id)
	clone := cloneTask(task)
	return &clone, nil
}

func (r *MemoryTaskRepository) DeleteByTaskBoards(ctx context.Context, boardIDs []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[primitive.ObjectID]bool, len(boardIDs))
	for _, id := range boardIDs {
		ids[id] = true
	}

	var deleted int64
	for id, task := range r.tasks {
		if ids[task.TaskBoardID] {
			delete(r.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *MemoryTaskRepository) SetTaskBoard(ctx context.Context, taskID, boardID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok {
		return nil
	}
	task.TaskBoardID = boardID
	r.tasks[taskID] = task
	return nil
}

func pullID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func cloneProject(p models.Project) models.Project {
	p.TaskBoards = append([]primitive.ObjectID{}, p.TaskBoards...)
	return p
}

func cloneBoard(b models.TaskBoard) models.TaskBoard {
	b.Tasks = append([]primitive.ObjectID{}, b.Tasks...)
	return b
}

func cloneTask(t models.Task) models.Task {
	t.Tags = append([]string{}, t.Tags...)
	t.Assignees = append([]primitive.ObjectID{}, t.Assignees...)
	return t
}
