package models

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/utils"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string    `gorm:"size:100" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      Role      `gorm:"type:enum('admin','sales','purchase','accounting','inventory','cashier','manager','finance');not null;default:'sales'" json:"role"`
	BranchId  int       `gorm:"index" json:"branch_id"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required"`
	BranchId int    `json:"branch_id"`
}

type LoginInfo struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (result *User) PrepareGive() {
	result.Password = ""
}

func Login(ctx context.Context, username string, password string) (*LoginInfo, error) {
	db := config.GetDB()

	var user User
	username = html.EscapeString(strings.TrimSpace(username))
	if err := db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, errors.New("invalid username or password")
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, errors.New("user is inactive")
	}

	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, errors.New("invalid username or password")
	}

	token, err := utils.JwtGenerate(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &LoginInfo{User: &user, Token: token}, nil
}

func (input *NewUser) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[User](ctx, "username", input.Username, id); err != nil {
		return err
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email")
	}
	if input.BranchId > 0 {
		if err := utils.ValidateResourceId[Branch](ctx, input.BranchId); err != nil {
			return errors.New("branch not found")
		}
	}
	return nil
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Username: input.Username,
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
		BranchId: input.BranchId,
		IsActive: utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &user, nil
}

func GetUser(ctx context.Context, id int) (*User, error) {
	user, err := utils.FetchModel[User](ctx, id)
	if err != nil {
		return nil, err
	}
	user.PrepareGive()
	return user, nil
}

func GetUsersAll(ctx context.Context) ([]*User, error) {
	users, err := utils.FetchAllModels[User](ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.PrepareGive()
	}
	return users, nil
}

func ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, errors.New("user id is required")
	}

	user, err := utils.FetchModel[User](ctx, userId)
	if err != nil {
		return nil, err
	}

	if err := utils.ComparePassword(user.Password, oldPassword); err != nil {
		return nil, errors.New("current password does not match")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(user).Update("Password", string(hashed)).Error; err != nil {
		return nil, err
	}

	user.PrepareGive()
	return user, nil
}
