package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/bkdev/go-blog-api/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, created_at)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	allUsers = `SELECT user_id, email, password_hash, created_at
    FROM users
    ORDER BY user_id;`

	addSession = `INSERT INTO sessions (user_id, access, token)
    VALUES ($1, $2, $3);`

	findUserByToken = `SELECT u.user_id, u.email, u.password_hash, u.created_at
    FROM users u
    JOIN sessions s ON s.user_id = u.user_id
    WHERE u.user_id = $1 AND s.access = $2 AND s.token = $3;`

	deleteSession = `DELETE FROM sessions
    WHERE user_id = $1 AND token = $2;`

	createArticle = `INSERT INTO articles (id, title, body, created_at, updated_at, creator_id, category_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, title, body, created_at, updated_at, creator_id, category_id;`

	deleteArticle = `DELETE FROM articles
    WHERE id = $1 AND creator_id = $2
    RETURNING id, title, body, created_at, updated_at, creator_id, category_id;`

	createCategory = `INSERT INTO categories (id, name, created_at, creator_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, created_at, creator_id;`

	allCategories = `SELECT id, name, created_at, creator_id
    FROM categories
    ORDER BY created_at;`

	findCategory = `SELECT id, name, created_at, creator_id
    FROM categories
    WHERE id = $1;`
)

// articleColumns is the canonical column order every article query selects
// and every article scan expects.
var articleColumns = []string{"id", "title", "body", "created_at", "updated_at", "creator_id", "category_id"}

// articlesTable is the table every dynamic article query targets.
var articlesTable = models.Article{}.TableName()

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListArticlesQuery builds the article listing query. A nil creatorID
// selects every article (public listing); a non-nil one restricts the result
// to that creator's records (owner-scoped listing).
func buildListArticlesQuery(creatorID *int64) (string, []any, error) {
	builder := psql.
		Select(articleColumns...).
		From(articlesTable).
		OrderBy("created_at")

	if creatorID != nil {
		builder = builder.Where(sq.Eq{"creator_id": *creatorID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindArticleQuery builds the single-article lookup. A non-nil
// creatorID makes the lookup owner-scoped, so another user's article behaves
// exactly like a missing one.
func buildFindArticleQuery(id any, creatorID *int64) (string, []any, error) {
	builder := psql.
		Select(articleColumns...).
		From(articlesTable).
		Where(sq.Eq{"id": id})

	if creatorID != nil {
		builder = builder.Where(sq.Eq{"creator_id": *creatorID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildArticlesByCategoryQuery builds the listing of all articles that
// reference the given category.
func buildArticlesByCategoryQuery(categoryID any) (string, []any, error) {
	query, args, err := psql.
		Select(articleColumns...).
		From(articlesTable).
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateArticleQuery builds the partial, owner-scoped article UPDATE.
// Only non-nil fields of update produce SET clauses; the modification stamp
// is always re-set. The RETURNING clause yields the updated record so the
// caller can distinguish no-match from success via sql.ErrNoRows.
func buildUpdateArticleQuery(update models.ArticleUpdate) (string, []any, error) {
	builder := psql.
		Update(articlesTable).
		Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID, "creator_id": update.CreatorID}).
		Suffix("RETURNING " + strings.Join(articleColumns, ", "))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}
	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
