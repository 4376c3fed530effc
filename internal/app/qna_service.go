package app

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

const questionPageSize = 20

var ErrAnswerMismatch = errors.New("answer does not belong to question")

type QnaService struct {
	db           *gorm.DB
	questionRepo *repository.QuestionRepository
	answerRepo   *repository.AnswerRepository
	likeRepo     *repository.LikeRepository
}

type CreateQuestionInput struct {
	Title   string
	Content string
}

type ToggleResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

func NewQnaService(
	db *gorm.DB,
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	likeRepo *repository.LikeRepository,
) *QnaService {
	return &QnaService{
		db:           db,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		likeRepo:     likeRepo,
	}
}

func (s *QnaService) CreateQuestion(actor *model.User, input CreateQuestionInput) (*model.Question, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	question := &model.Question{
		UserID:   actor.ID,
		Nickname: actor.Nickname,
		Title:    title,
		Content:  content,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QnaService) ListQuestions(page int, solved *bool) ([]model.Question, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.questionRepo.List((page-1)*questionPageSize, questionPageSize, solved)
}

func (s *QnaService) GetQuestion(id uint) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}

	if err := s.questionRepo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	question.ViewCount++
	return question, nil
}

func (s *QnaService) UpdateQuestion(actor *model.User, id uint, input CreateQuestionInput) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	if question.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	question.Title = title
	question.Content = content
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QnaService) DeleteQuestion(actor *model.User, id uint) error {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrNotFound
	}
	if question.UserID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.QuestionLike{}).Error; err != nil {
			return err
		}
		return repository.NewQuestionRepository(tx).Delete(id)
	})
}

func (s *QnaService) CreateAnswer(actor *model.User, questionID uint, content string) (*model.Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}

	answer := &model.Answer{
		QuestionID: questionID,
		UserID:     actor.ID,
		Nickname:   actor.Nickname,
		Content:    content,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewAnswerRepository(tx).Create(answer); err != nil {
			return err
		}
		return repository.NewQuestionRepository(tx).AddAnswerCount(questionID, 1)
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *QnaService) ListAnswers(questionID uint) ([]model.Answer, error) {
	if questionID == 0 {
		return nil, ErrInvalidInput
	}
	return s.answerRepo.ListByQuestion(questionID)
}

func (s *QnaService) UpdateAnswer(actor *model.User, id uint, content string) (*model.Answer, error) {
	answer, err := s.answerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}
	if answer.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	answer.Content = content
	if err := s.answerRepo.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *QnaService) DeleteAnswer(actor *model.User, id uint) error {
	answer, err := s.answerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrNotFound
	}
	if answer.UserID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&model.AnswerLike{}).Error; err != nil {
			return err
		}
		if err := repository.NewAnswerRepository(tx).Delete(id); err != nil {
			return err
		}
		return repository.NewQuestionRepository(tx).AddAnswerCount(answer.QuestionID, -1)
	})
}

// ToggleQuestionLike flips the (question, user) like state: absent row means
// insert plus increment, present means delete plus decrement, all in one
// transaction. The check and the mutation are not atomic relative to a
// concurrent toggle for the same pair, so the counter can drift from the
// row count under duplicate concurrent requests.
func (s *QnaService) ToggleQuestionLike(userID, questionID uint) (*ToggleResult, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}

	var liked bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)
		questions := repository.NewQuestionRepository(tx)

		existing, err := likes.GetQuestionLike(questionID, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := likes.CreateQuestionLike(&model.QuestionLike{
				QuestionID: questionID,
				UserID:     userID,
			}); err != nil {
				return err
			}
			liked = true
			return questions.AddLikeCount(questionID, 1)
		}

		if err := likes.DeleteQuestionLike(questionID, userID); err != nil {
			return err
		}
		liked = false
		return questions.AddLikeCount(questionID, -1)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Liked: liked, LikeCount: updated.LikeCount}, nil
}

// ToggleAnswerLike mirrors ToggleQuestionLike for answers.
func (s *QnaService) ToggleAnswerLike(userID, answerID uint) (*ToggleResult, error) {
	answer, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}

	var liked bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)
		answers := repository.NewAnswerRepository(tx)

		existing, err := likes.GetAnswerLike(answerID, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := likes.CreateAnswerLike(&model.AnswerLike{
				AnswerID: answerID,
				UserID:   userID,
			}); err != nil {
				return err
			}
			liked = true
			return answers.AddLikeCount(answerID, 1)
		}

		if err := likes.DeleteAnswerLike(answerID, userID); err != nil {
			return err
		}
		liked = false
		return answers.AddLikeCount(answerID, -1)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Liked: liked, LikeCount: updated.LikeCount}, nil
}

// AcceptAnswer marks the question solved and the answer accepted in one
// transaction. Only the question's author may accept, and the answer must
// belong to the question.
func (s *QnaService) AcceptAnswer(actor *model.User, questionID, answerID uint) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrNotFound
	}
	if question.UserID != actor.ID {
		return ErrForbidden
	}

	answer, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrNotFound
	}
	if answer.QuestionID != questionID {
		return ErrAnswerMismatch
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewQuestionRepository(tx).MarkSolved(questionID); err != nil {
			return err
		}
		return repository.NewAnswerRepository(tx).MarkAccepted(answerID)
	})
}
