package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
)

func TestEmployeeRepo_DeleteEmployee_Cascades(t *testing.T) {
	db := newTestDB(t)
	employeeRepo := NewEmployeeRepo(db)
	tokenRepo := NewTokenRepo(db)
	snapshotRepo := NewSnapshotRepo(db)
	videoRepo := NewVideoRepo(db)
	ctx := context.Background()

	today := time.Now().Truncate(24 * time.Hour)
	for _, id := range []string{"emp_1", "emp_2"} {
		if err := employeeRepo.CreateEmployee(ctx, &model.Employee{
			ID: id, Name: "张三", DouyinAccount: "dy_" + id,
		}); err != nil {
			t.Fatalf("create employee %s: %v", id, err)
		}
		if err := tokenRepo.SaveToken(ctx, &model.AuthToken{EmployeeID: id, AccessToken: "act." + id}); err != nil {
			t.Fatalf("save token %s: %v", id, err)
		}
		if err := snapshotRepo.SaveSnapshots(ctx, []*model.MetricSnapshot{
			{EmployeeID: id, DataType: model.MetricTypeFans, DataValue: 100, DataDate: today},
			{EmployeeID: id, DataType: model.MetricTypeLike, DataValue: 200, DataDate: today},
		}); err != nil {
			t.Fatalf("save snapshots %s: %v", id, err)
		}
		if err := videoRepo.ReplaceVideos(ctx, id, []*model.VideoRecord{
			{EmployeeID: id, ItemID: "v_" + id, Title: "新品发布"},
		}); err != nil {
			t.Fatalf("save videos %s: %v", id, err)
		}
	}

	affected, err := employeeRepo.DeleteEmployee(ctx, "emp_1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	// emp_1 的令牌、快照和视频应一并删除
	token, err := tokenRepo.GetToken(ctx, "emp_1")
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if token != nil {
		t.Errorf("expected token removed with employee, got %+v", token)
	}
	history, err := snapshotRepo.GetHistory(ctx, "emp_1", 30)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected snapshots removed with employee, got %d", len(history))
	}
	videos, err := videoRepo.ListVideos(ctx, "emp_1", 10)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("expected videos removed with employee, got %d", len(videos))
	}

	// emp_2 不受影响
	if token, _ := tokenRepo.GetToken(ctx, "emp_2"); token == nil {
		t.Error("expected emp_2 token untouched")
	}
	if history, _ := snapshotRepo.GetHistory(ctx, "emp_2", 30); len(history) != 2 {
		t.Errorf("expected emp_2 snapshots untouched, got %d", len(history))
	}
	if videos, _ := videoRepo.ListVideos(ctx, "emp_2", 10); len(videos) != 1 {
		t.Errorf("expected emp_2 videos untouched, got %d", len(videos))
	}
}

func TestEmployeeRepo_DeleteEmployee_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepo(db)

	affected, err := repo.DeleteEmployee(context.Background(), "emp_missing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 affected rows, got %d", affected)
	}
}
