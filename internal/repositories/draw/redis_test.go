package draw

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dball/internal/models"
)

// RepositoryTestSuite exercises the Repository contract; each backend runs it with its own setup
type RepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	testNow time.Time
	ctx     context.Context

	setup    func() Repository
	teardown func()
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.setup()
	s.ctx = context.Background()
	s.testNow = time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.teardown != nil {
		s.teardown()
	}
}

func (s *RepositoryTestSuite) createDraw(id, period string, status models.DrawStatus, offset time.Duration) *models.Draw {
	d := &models.Draw{
		ID:         id,
		Period:     period,
		Numbers:    models.MustNumberSet([]int{2, 11, 17, 22, 28, 31}, 9),
		Multiplier: 2,
		Status:     status,
		CreatedAt:  s.testNow.Add(offset),
		ModifiedAt: s.testNow.Add(offset),
	}
	s.Require().NoError(s.repo.CreateDraw(s.ctx, &CreateDrawInput{Draw: d}))
	return d
}

// publish is the supersede rule: the target goes live and every other published draw is withdrawn
func publish(drawID string, at time.Time) ApplyFunc {
	return func(draws []*models.Draw) ([]*models.Draw, error) {
		var target *models.Draw
		for _, d := range draws {
			if d.ID == drawID {
				target = d
			}
		}
		if target == nil {
			return nil, models.ErrDrawNotFound
		}
		if !target.Status.CanTransitionTo(models.DrawStatusPublished) {
			return nil, &models.TransitionError{DrawID: drawID, From: target.Status, To: models.DrawStatusPublished}
		}

		var changed []*models.Draw
		for _, d := range draws {
			if d.ID != drawID && d.Status == models.DrawStatusPublished {
				if err := d.Transition(models.DrawStatusDeprecated, at); err != nil {
					return nil, err
				}
				changed = append(changed, d)
			}
		}
		if err := target.Transition(models.DrawStatusPublished, at); err != nil {
			return nil, err
		}
		return append(changed, target), nil
	}
}

func (s *RepositoryTestSuite) statuses(period string) map[string]models.DrawStatus {
	out, err := s.repo.ListDrawsByPeriod(s.ctx, &ListDrawsByPeriodInput{Period: period})
	s.Require().NoError(err)

	statuses := make(map[string]models.DrawStatus, len(out.Draws))
	for _, d := range out.Draws {
		statuses[d.ID] = d.Status
	}
	return statuses
}

func (s *RepositoryTestSuite) TestCreateAndGetDraw() {
	created := s.createDraw("draw-1", "2024028", models.DrawStatusPending, 0)

	got, err := s.repo.GetDraw(s.ctx, &GetDrawInput{DrawID: "draw-1"})
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal(created.Period, got.Period)
	s.Equal(created.Numbers, got.Numbers)
	s.Equal(2, got.Multiplier)
	s.Equal(models.DrawStatusPending, got.Status)
	s.True(created.CreatedAt.Equal(got.CreatedAt))
	s.True(created.ModifiedAt.Equal(got.ModifiedAt))
}

func (s *RepositoryTestSuite) TestGetDrawNotFound() {
	_, err := s.repo.GetDraw(s.ctx, &GetDrawInput{DrawID: "missing"})
	s.ErrorIs(err, models.ErrDrawNotFound)
}

func (s *RepositoryTestSuite) TestCreateDrawRejectsReusedID() {
	s.createDraw("draw-1", "2024028", models.DrawStatusPending, 0)

	err := s.repo.CreateDraw(s.ctx, &CreateDrawInput{Draw: &models.Draw{
		ID:         "draw-1",
		Period:     "2024028",
		Numbers:    models.MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 1),
		Multiplier: 1,
		Status:     models.DrawStatusPending,
		CreatedAt:  s.testNow,
		ModifiedAt: s.testNow,
	}})
	s.ErrorIs(err, ErrDrawExists)
}

func (s *RepositoryTestSuite) TestListDrawsByPeriodOldestFirst() {
	s.createDraw("second", "2024028", models.DrawStatusPending, time.Hour)
	s.createDraw("first", "2024028", models.DrawStatusPending, 0)
	s.createDraw("elsewhere", "2024029", models.DrawStatusPending, 0)

	out, err := s.repo.ListDrawsByPeriod(s.ctx, &ListDrawsByPeriodInput{Period: "2024028"})
	s.Require().NoError(err)
	s.Require().Len(out.Draws, 2)
	s.Equal("first", out.Draws[0].ID)
	s.Equal("second", out.Draws[1].ID)

	empty, err := s.repo.ListDrawsByPeriod(s.ctx, &ListDrawsByPeriodInput{Period: "2099001"})
	s.Require().NoError(err)
	s.Empty(empty.Draws)
}

func (s *RepositoryTestSuite) TestUpdatePeriodPublishSupersedes() {
	s.createDraw("original", "2024028", models.DrawStatusPending, 0)
	s.createDraw("correction", "2024028", models.DrawStatusPending, time.Minute)

	_, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
		Period: "2024028",
		Apply:  publish("original", s.testNow.Add(time.Hour)),
	})
	s.Require().NoError(err)

	out, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
		Period: "2024028",
		Apply:  publish("correction", s.testNow.Add(2*time.Hour)),
	})
	s.Require().NoError(err)
	s.Len(out.Draws, 2)

	s.Equal(map[string]models.DrawStatus{
		"original":   models.DrawStatusDeprecated,
		"correction": models.DrawStatusPublished,
	}, s.statuses("2024028"))

	original, err := s.repo.GetDraw(s.ctx, &GetDrawInput{DrawID: "original"})
	s.Require().NoError(err)
	s.True(s.testNow.Add(2 * time.Hour).Equal(original.ModifiedAt))
	s.True(s.testNow.Equal(original.CreatedAt))
}

func (s *RepositoryTestSuite) TestUpdatePeriodApplyErrorWritesNothing() {
	s.createDraw("draw-1", "2024028", models.DrawStatusPending, 0)
	boom := errors.New("boom")

	_, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
		Period: "2024028",
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			draws[0].Status = models.DrawStatusPublished
			return nil, boom
		},
	})
	s.ErrorIs(err, boom)
	s.Equal(map[string]models.DrawStatus{"draw-1": models.DrawStatusPending}, s.statuses("2024028"))
}

func (s *RepositoryTestSuite) TestUpdatePeriodTransitionErrorPassesThrough() {
	s.createDraw("draw-1", "2024028", models.DrawStatusDeprecated, 0)

	_, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
		Period: "2024028",
		Apply:  publish("draw-1", s.testNow),
	})
	s.ErrorIs(err, models.ErrInvalidTransition)

	var transitionErr *models.TransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal(models.DrawStatusDeprecated, transitionErr.From)
}

func (s *RepositoryTestSuite) TestUpdatePeriodRejectsForeignDraw() {
	s.createDraw("draw-1", "2024028", models.DrawStatusPending, 0)
	foreign := s.createDraw("draw-2", "2024029", models.DrawStatusPending, 0)

	_, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
		Period: "2024028",
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			foreign.Status = models.DrawStatusDeprecated
			return []*models.Draw{foreign}, nil
		},
	})
	s.ErrorIs(err, models.ErrDrawNotFound)
	s.Equal(map[string]models.DrawStatus{"draw-2": models.DrawStatusPending}, s.statuses("2024029"))
}

func (s *RepositoryTestSuite) TestConcurrentPublishLeavesOnePublished() {
	const contenders = 5
	for i := 0; i < contenders; i++ {
		s.createDraw(fmt.Sprintf("draw-%d", i), "2024028", models.DrawStatusPending, time.Duration(i)*time.Second)
	}

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
				Period: "2024028",
				Apply:  publish(fmt.Sprintf("draw-%d", i), s.testNow.Add(time.Hour)),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.Require().NoError(err)
	}

	published := 0
	for _, status := range s.statuses("2024028") {
		if status == models.DrawStatusPublished {
			published++
		}
	}
	s.Equal(1, published)
}

func (s *RepositoryTestSuite) TestListPublishedPeriods() {
	s.createDraw("a", "2024030", models.DrawStatusPending, 0)
	s.createDraw("b", "2024028", models.DrawStatusPending, 0)
	s.createDraw("c", "2024029", models.DrawStatusPending, 0)

	for _, p := range []struct{ id, period string }{{"a", "2024030"}, {"b", "2024028"}} {
		_, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{Period: p.period, Apply: publish(p.id, s.testNow)})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListPublishedPeriods(s.ctx, &ListPublishedPeriodsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"2024028", "2024030"}, out.Periods)

	// Withdrawing the only published draw removes the period
	_, err = s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{
		Period: "2024030",
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			if err := draws[0].Transition(models.DrawStatusDeprecated, s.testNow); err != nil {
				return nil, err
			}
			return draws, nil
		},
	})
	s.Require().NoError(err)

	out, err = s.repo.ListPublishedPeriods(s.ctx, &ListPublishedPeriodsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"2024028"}, out.Periods)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.CreateDraw(s.ctx, nil))
	s.Error(s.repo.CreateDraw(s.ctx, &CreateDrawInput{Draw: &models.Draw{ID: "x"}}))

	_, err := s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{Period: "2024028"})
	s.Error(err)

	_, err = s.repo.GetDraw(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.ListDrawsByDateRange(s.ctx, &ListDrawsByDateRangeInput{From: s.testNow, To: s.testNow})
	s.Error(err)

	_, err = s.repo.ListLatestDraws(s.ctx, &ListLatestDrawsInput{})
	s.Error(err)

	_, err = s.repo.CountDraws(s.ctx, nil)
	s.Error(err)
}

func (s *RepositoryTestSuite) TestListDrawsByDateRange() {
	s.createDraw("before", "2024027", models.DrawStatusPublished, -48*time.Hour)
	s.createDraw("at-from", "2024028", models.DrawStatusPending, -24*time.Hour)
	s.createDraw("inside", "2024029", models.DrawStatusPending, -time.Hour)
	s.createDraw("at-to", "2024030", models.DrawStatusPending, 0)

	out, err := s.repo.ListDrawsByDateRange(s.ctx, &ListDrawsByDateRangeInput{
		From: s.testNow.Add(-24 * time.Hour),
		To:   s.testNow,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Draws, 2)
	s.Equal("at-from", out.Draws[0].ID)
	s.Equal("inside", out.Draws[1].ID)

	empty, err := s.repo.ListDrawsByDateRange(s.ctx, &ListDrawsByDateRangeInput{
		From: s.testNow.Add(time.Hour),
		To:   s.testNow.Add(2 * time.Hour),
	})
	s.Require().NoError(err)
	s.NotNil(empty.Draws)
	s.Empty(empty.Draws)
}

func (s *RepositoryTestSuite) TestListLatestDraws() {
	s.createDraw("old", "2024027", models.DrawStatusPublished, -48*time.Hour)
	s.createDraw("new", "2024028", models.DrawStatusPending, 0)
	s.createDraw("mid", "2024028", models.DrawStatusPending, -time.Hour)

	out, err := s.repo.ListLatestDraws(s.ctx, &ListLatestDrawsInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Draws, 2)
	s.Equal("new", out.Draws[0].ID)
	s.Equal("mid", out.Draws[1].ID)
}

func (s *RepositoryTestSuite) TestCountDraws() {
	none, err := s.repo.CountDraws(s.ctx, &CountDrawsInput{})
	s.Require().NoError(err)
	s.Zero(none.Count)

	s.createDraw("a", "2024027", models.DrawStatusPublished, 0)
	s.createDraw("b", "2024028", models.DrawStatusPending, 0)
	s.createDraw("c", "2024028", models.DrawStatusPending, time.Minute)

	// Deprecated rows are kept, so they still count
	_, err = s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{Period: "2024028", Apply: publish("b", s.testNow)})
	s.Require().NoError(err)
	_, err = s.repo.UpdatePeriod(s.ctx, &UpdatePeriodInput{Period: "2024028", Apply: publish("c", s.testNow)})
	s.Require().NoError(err)

	all, err := s.repo.CountDraws(s.ctx, &CountDrawsInput{})
	s.Require().NoError(err)
	s.Equal(int64(3), all.Count)

	period, err := s.repo.CountDraws(s.ctx, &CountDrawsInput{Period: "2024028"})
	s.Require().NoError(err)
	s.Equal(int64(2), period.Count)
}

func (s *RepositoryTestSuite) TestListDrawsByPeriodMicrosecondApart() {
	s.createDraw("z-first", "2024028", models.DrawStatusPending, 0)
	s.createDraw("a-second", "2024028", models.DrawStatusPending, time.Microsecond)

	out, err := s.repo.ListDrawsByPeriod(s.ctx, &ListDrawsByPeriodInput{Period: "2024028"})
	s.Require().NoError(err)
	s.Require().Len(out.Draws, 2)
	s.Equal("z-first", out.Draws[0].ID)
	s.Equal("a-second", out.Draws[1].ID)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	var (
		mr     *miniredis.Miniredis
		client *redis.Client
	)

	s := &RepositoryTestSuite{}
	s.setup = func() Repository {
		var err error
		mr, err = miniredis.Run()
		s.Require().NoError(err)

		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

		repo, err := NewRedis(&Config{RedisClient: client})
		s.Require().NoError(err)
		return repo
	}
	s.teardown = func() {
		client.Close()
		mr.Close()
	}

	suite.Run(t, s)
}

func TestRedisUpdatePeriodRetriesOnConflict(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := NewRedis(&Config{RedisClient: client})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	now := time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC)
	err = repo.CreateDraw(ctx, &CreateDrawInput{Draw: &models.Draw{
		ID: "draw-1", Period: "2024028", Numbers: models.MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 1),
		Multiplier: 1, Status: models.DrawStatusPending, CreatedAt: now, ModifiedAt: now,
	}})
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	_, err = repo.UpdatePeriod(ctx, &UpdatePeriodInput{
		Period: "2024028",
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			calls++
			if calls == 1 {
				// Another writer commits between our read and our EXEC
				mr.Incr(periodVersionKeyPrefix+"2024028", 1)
			}
			if err := draws[0].Transition(models.DrawStatusPublished, now); err != nil {
				return nil, err
			}
			return draws, nil
		},
	})
	if err != nil {
		t.Fatalf("update period: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected the apply to run twice, ran %d times", calls)
	}
}
