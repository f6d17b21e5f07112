package recipe

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/entities"
	"Recipe-App-API/internal/utils/storage"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// -------- test fakes --------

type fakeTagRepo struct {
	TagRepositoryStub
	tags []*entities.Tag
}

type TagRepositoryStub struct{}

func (TagRepositoryStub) CreateTag(ctx context.Context, tag *entities.Tag) error { return nil }
func (TagRepositoryStub) GetTagByID(ctx context.Context, id string) (*entities.Tag, error) {
	return nil, gorm.ErrRecordNotFound
}
func (TagRepositoryStub) GetTagByUserAndName(ctx context.Context, userID, name string) (*entities.Tag, error) {
	return nil, gorm.ErrRecordNotFound
}
func (TagRepositoryStub) GetTags(ctx context.Context, userID string, assignedOnly bool) ([]*entities.Tag, error) {
	return nil, nil
}
func (TagRepositoryStub) UpdateTag(ctx context.Context, tag *entities.Tag) error { return nil }
func (TagRepositoryStub) DeleteTag(ctx context.Context, id string) error         { return nil }

func (f *fakeTagRepo) CreateTag(ctx context.Context, tag *entities.Tag) error {
	f.tags = append(f.tags, tag)
	return nil
}

func (f *fakeTagRepo) GetTagByUserAndName(ctx context.Context, userID, name string) (*entities.Tag, error) {
	for _, t := range f.tags {
		if t.UserID.String() == userID && t.Name == name {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeIngredientRepo struct {
	IngredientRepositoryStub
	ingredients []*entities.Ingredient
}

type IngredientRepositoryStub struct{}

func (IngredientRepositoryStub) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return nil
}
func (IngredientRepositoryStub) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	return nil, gorm.ErrRecordNotFound
}
func (IngredientRepositoryStub) GetIngredientByUserAndName(ctx context.Context, userID, name string) (*entities.Ingredient, error) {
	return nil, gorm.ErrRecordNotFound
}
func (IngredientRepositoryStub) GetIngredients(ctx context.Context, userID string, assignedOnly bool) ([]*entities.Ingredient, error) {
	return nil, nil
}
func (IngredientRepositoryStub) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return nil
}
func (IngredientRepositoryStub) DeleteIngredient(ctx context.Context, id string) error { return nil }

func (f *fakeIngredientRepo) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	f.ingredients = append(f.ingredients, ingredient)
	return nil
}

func (f *fakeIngredientRepo) GetIngredientByUserAndName(ctx context.Context, userID, name string) (*entities.Ingredient, error) {
	for _, i := range f.ingredients {
		if i.UserID.String() == userID && i.Name == name {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRecipeRepo struct {
	recipes map[string]*entities.Recipe

	replacedTags        map[string][]*entities.Tag
	replacedIngredients map[string][]*entities.Ingredient
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{
		recipes:             make(map[string]*entities.Recipe),
		replacedTags:        make(map[string][]*entities.Tag),
		replacedIngredients: make(map[string][]*entities.Ingredient),
	}
}

func (f *fakeRecipeRepo) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepo) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

// GetRecipes mirrors the repository's join semantics: each non-empty
// filter keeps recipes whose relation set intersects the ids, the two
// filters combine with AND, and a recipe matching several ids still
// comes back once.
func (f *fakeRecipeRepo) GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.UserID.String() != userID {
			continue
		}
		if len(tagIDs) > 0 && !tagsIntersect(r.Tags, tagIDs) {
			continue
		}
		if len(ingredientIDs) > 0 && !ingredientsIntersect(r.Ingredients, ingredientIDs) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func tagsIntersect(tags []*entities.Tag, ids []string) bool {
	for _, t := range tags {
		for _, id := range ids {
			if t.ID.String() == id {
				return true
			}
		}
	}
	return false
}

func ingredientsIntersect(ingredients []*entities.Ingredient, ids []string) bool {
	for _, i := range ingredients {
		for _, id := range ids {
			if i.ID.String() == id {
				return true
			}
		}
	}
	return false
}

func (f *fakeRecipeRepo) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.Ingredient) error {
	if tags != nil {
		recipe.Tags = tags
		f.replacedTags[recipe.ID.String()] = tags
	}
	if ingredients != nil {
		recipe.Ingredients = ingredients
		f.replacedIngredients[recipe.ID.String()] = ingredients
	}
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepo) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	delete(f.recipes, recipe.ID.String())
	return nil
}

// -------- helpers --------

func newTestService() (RecipeService, *fakeRecipeRepo, *fakeTagRepo, *fakeIngredientRepo) {
	recipeRepo := newFakeRecipeRepo()
	tagRepo := &fakeTagRepo{}
	ingredientRepo := &fakeIngredientRepo{}
	service := NewRecipeService(recipeRepo, tagRepo, ingredientRepo, storage.AwsS3{})
	return service, recipeRepo, tagRepo, ingredientRepo
}

// -------- tests --------

func TestCreateRecipe_DuplicateTagNamesCollapse(t *testing.T) {
	service, _, tagRepo, _ := newTestService()
	userID := uuid.New().String()

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Pancakes",
		TimeMinutes: 20,
		Price:       4.50,
		Tags:        []domain.TagInput{{Name: "Breakfast"}, {Name: "Breakfast"}},
	}, userID)
	require.NoError(t, err)

	assert.Len(t, res.Tags, 1)
	assert.Equal(t, "Breakfast", res.Tags[0].Name)
	assert.Len(t, tagRepo.tags, 1)
	assert.Equal(t, userID, tagRepo.tags[0].UserID.String())
}

func TestCreateRecipe_ReusesExistingTag(t *testing.T) {
	service, _, tagRepo, _ := newTestService()
	userUUID := uuid.New()

	existing := &entities.Tag{ID: uuid.New(), UserID: userUUID, Name: "Dinner"}
	tagRepo.tags = append(tagRepo.tags, existing)

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Stew",
		Tags:  []domain.TagInput{{Name: "Dinner"}},
	}, userUUID.String())
	require.NoError(t, err)

	require.Len(t, res.Tags, 1)
	assert.Equal(t, existing.ID.String(), res.Tags[0].ID)
	assert.Len(t, tagRepo.tags, 1)
}

func TestCreateRecipe_DoesNotReuseOtherUsersIngredient(t *testing.T) {
	service, _, _, ingredientRepo := newTestService()
	userID := uuid.New().String()

	other := &entities.Ingredient{ID: uuid.New(), UserID: uuid.New(), Name: "Salt"}
	ingredientRepo.ingredients = append(ingredientRepo.ingredients, other)

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Soup",
		Ingredients: []domain.IngredientInput{{Name: "Salt"}},
	}, userID)
	require.NoError(t, err)

	require.Len(t, res.Ingredients, 1)
	assert.NotEqual(t, other.ID.String(), res.Ingredients[0].ID)
	assert.Len(t, ingredientRepo.ingredients, 2)
	assert.Equal(t, userID, ingredientRepo.ingredients[1].UserID.String())
}

func TestUpdateRecipe_EmptyTagListClearsRelation(t *testing.T) {
	service, recipeRepo, tagRepo, _ := newTestService()
	userUUID := uuid.New()

	existing := &entities.Tag{ID: uuid.New(), UserID: userUUID, Name: "Dessert"}
	tagRepo.tags = append(tagRepo.tags, existing)

	stored := &entities.Recipe{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  "Cake",
		Tags:   []*entities.Tag{existing},
	}
	recipeRepo.recipes[stored.ID.String()] = stored

	res, err := service.UpdateRecipe(context.Background(), stored.ID.String(), domain.UpdateRecipeRequest{
		Tags: []domain.TagInput{},
	}, userUUID.String())
	require.NoError(t, err)

	assert.Empty(t, res.Tags)
	replaced, ok := recipeRepo.replacedTags[stored.ID.String()]
	require.True(t, ok, "relation replacement should have been requested")
	assert.Empty(t, replaced)
	// the tag row itself survives
	assert.Len(t, tagRepo.tags, 1)
}

func TestUpdateRecipe_OmittedTagsStayUntouched(t *testing.T) {
	service, recipeRepo, tagRepo, _ := newTestService()
	userUUID := uuid.New()

	existing := &entities.Tag{ID: uuid.New(), UserID: userUUID, Name: "Vegan"}
	tagRepo.tags = append(tagRepo.tags, existing)

	stored := &entities.Recipe{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  "Salad",
		Tags:   []*entities.Tag{existing},
	}
	recipeRepo.recipes[stored.ID.String()] = stored

	res, err := service.UpdateRecipe(context.Background(), stored.ID.String(), domain.UpdateRecipeRequest{
		Title: "Green Salad",
	}, userUUID.String())
	require.NoError(t, err)

	assert.Equal(t, "Green Salad", res.Title)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, existing.ID.String(), res.Tags[0].ID)
	_, replaced := recipeRepo.replacedTags[stored.ID.String()]
	assert.False(t, replaced, "relation replacement should not have been requested")
}

func TestGetRecipes_TagFilterMatchingTwiceReturnsOnce(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()
	userUUID := uuid.New()

	vegan := &entities.Tag{ID: uuid.New(), UserID: userUUID, Name: "Vegan"}
	quick := &entities.Tag{ID: uuid.New(), UserID: userUUID, Name: "Quick"}

	both := &entities.Recipe{ID: uuid.New(), UserID: userUUID, Title: "Both", Tags: []*entities.Tag{vegan, quick}}
	plain := &entities.Recipe{ID: uuid.New(), UserID: userUUID, Title: "Plain"}
	recipeRepo.recipes[both.ID.String()] = both
	recipeRepo.recipes[plain.ID.String()] = plain

	res, err := service.GetRecipes(context.Background(), userUUID.String(),
		[]string{vegan.ID.String(), quick.ID.String()}, nil)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Both", res[0].Title)
}

func TestGetRecipes_FiltersCombineWithAnd(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()
	userUUID := uuid.New()

	dinner := &entities.Tag{ID: uuid.New(), UserID: userUUID, Name: "Dinner"}
	salt := &entities.Ingredient{ID: uuid.New(), UserID: userUUID, Name: "Salt"}

	tagOnly := &entities.Recipe{ID: uuid.New(), UserID: userUUID, Title: "Tag Only", Tags: []*entities.Tag{dinner}}
	both := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       "Both",
		Tags:        []*entities.Tag{dinner},
		Ingredients: []*entities.Ingredient{salt},
	}
	recipeRepo.recipes[tagOnly.ID.String()] = tagOnly
	recipeRepo.recipes[both.ID.String()] = both

	res, err := service.GetRecipes(context.Background(), userUUID.String(),
		[]string{dinner.ID.String()}, []string{salt.ID.String()})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Both", res[0].Title)
}

func TestGetRecipes_OnlyOwn(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()
	userUUID := uuid.New()

	mine := &entities.Recipe{ID: uuid.New(), UserID: userUUID, Title: "Mine"}
	theirs := &entities.Recipe{ID: uuid.New(), UserID: uuid.New(), Title: "Theirs"}
	recipeRepo.recipes[mine.ID.String()] = mine
	recipeRepo.recipes[theirs.ID.String()] = theirs

	res, err := service.GetRecipes(context.Background(), userUUID.String(), nil, nil)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Mine", res[0].Title)
}

func TestUpdateRecipe_ZeroValuesApplied(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()
	userUUID := uuid.New()

	stored := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       "Freebie",
		TimeMinutes: 30,
		Price:       9.99,
	}
	recipeRepo.recipes[stored.ID.String()] = stored

	zeroMinutes := 0
	zeroPrice := 0.0
	res, err := service.UpdateRecipe(context.Background(), stored.ID.String(), domain.UpdateRecipeRequest{
		TimeMinutes: &zeroMinutes,
		Price:       &zeroPrice,
	}, userUUID.String())
	require.NoError(t, err)

	assert.Equal(t, 0, res.TimeMinutes)
	assert.Equal(t, 0.0, res.Price)
	assert.Equal(t, 0, recipeRepo.recipes[stored.ID.String()].TimeMinutes)
	assert.Equal(t, 0.0, recipeRepo.recipes[stored.ID.String()].Price)
}

func TestUpdateRecipe_OmittedNumbersStayUntouched(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()
	userUUID := uuid.New()

	stored := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       "Stable",
		TimeMinutes: 30,
		Price:       9.99,
	}
	recipeRepo.recipes[stored.ID.String()] = stored

	res, err := service.UpdateRecipe(context.Background(), stored.ID.String(), domain.UpdateRecipeRequest{
		Title: "Still Stable",
	}, userUUID.String())
	require.NoError(t, err)

	assert.Equal(t, 30, res.TimeMinutes)
	assert.Equal(t, 9.99, res.Price)
}

func TestUpdateRecipe_NotOwnedLooksAbsent(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()

	stored := &entities.Recipe{ID: uuid.New(), UserID: uuid.New(), Title: "Secret"}
	recipeRepo.recipes[stored.ID.String()] = stored

	_, err := service.UpdateRecipe(context.Background(), stored.ID.String(), domain.UpdateRecipeRequest{
		Title: "Hijacked",
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Equal(t, "Secret", recipeRepo.recipes[stored.ID.String()].Title)
}

func TestDeleteRecipe_NotOwnedLooksAbsent(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()

	stored := &entities.Recipe{ID: uuid.New(), UserID: uuid.New(), Title: "Keep"}
	recipeRepo.recipes[stored.ID.String()] = stored

	err := service.DeleteRecipe(context.Background(), stored.ID.String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Contains(t, recipeRepo.recipes, stored.ID.String())
}

func TestDeleteRecipe_Owned(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()
	userUUID := uuid.New()

	stored := &entities.Recipe{ID: uuid.New(), UserID: userUUID, Title: "Old"}
	recipeRepo.recipes[stored.ID.String()] = stored

	err := service.DeleteRecipe(context.Background(), stored.ID.String(), userUUID.String())

	require.NoError(t, err)
	assert.NotContains(t, recipeRepo.recipes, stored.ID.String())
}

func TestGetRecipeDetail_NotOwnedLooksAbsent(t *testing.T) {
	service, recipeRepo, _, _ := newTestService()

	stored := &entities.Recipe{ID: uuid.New(), UserID: uuid.New(), Title: "Private"}
	recipeRepo.recipes[stored.ID.String()] = stored

	_, err := service.GetRecipeDetail(context.Background(), stored.ID.String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetail_Missing(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.GetRecipeDetail(context.Background(), uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
