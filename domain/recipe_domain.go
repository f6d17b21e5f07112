package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	TagInput struct {
		Name string `json:"name" validate:"required"`
	}

	IngredientInput struct {
		Name string `json:"name" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title       string            `json:"title" validate:"required"`
		Description string            `json:"description,omitempty"`
		TimeMinutes int               `json:"time_minutes" validate:"gte=0"`
		Price       float64           `json:"price" validate:"gte=0"`
		Link        string            `json:"link,omitempty" validate:"omitempty,url"`
		Tags        []TagInput        `json:"tags,omitempty" validate:"omitempty,dive"`
		Ingredients []IngredientInput `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	// Nil Tags/Ingredients means the relation was omitted and must stay
	// untouched; an empty non-nil slice clears it. TimeMinutes and Price
	// are pointers so an explicit zero applies while nil leaves the
	// stored value.
	UpdateRecipeRequest struct {
		Title       string            `json:"title,omitempty"`
		Description string            `json:"description,omitempty"`
		TimeMinutes *int              `json:"time_minutes,omitempty" validate:"omitempty,gte=0"`
		Price       *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
		Link        string            `json:"link,omitempty" validate:"omitempty,url"`
		Tags        []TagInput        `json:"tags,omitempty" validate:"omitempty,dive"`
		Ingredients []IngredientInput `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		TimeMinutes int       `json:"time_minutes"`
		Price       float64   `json:"price"`
		Link        string    `json:"link,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Description string               `json:"description"`
		ImageURL    string               `json:"image_url,omitempty"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}

	UploadImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
