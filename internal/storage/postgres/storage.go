package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dbPool is the subset of pgxpool.Pool the storage relies on; tests
// substitute a pgxmock pool through it.
type dbPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type itemRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	storage.logger.Debug("database schema ready")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Items() repository.OrderItemRepository {
	return &itemRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'employee',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            website_url TEXT NOT NULL,
            menu_url TEXT,
            image_url TEXT,
            created_by BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            order_day DATE NOT NULL,
            created_by BIGINT NOT NULL REFERENCES users(id),
            status TEXT NOT NULL DEFAULT 'OPEN',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            user_id BIGINT NOT NULL REFERENCES users(id),
            item_name TEXT NOT NULL,
            notes TEXT,
            price DOUBLE PRECISION,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (order_id, user_id)
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            message TEXT NOT NULL,
            read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_open_day ON orders(order_day) WHERE status = 'OPEN'`,
		`CREATE INDEX IF NOT EXISTS idx_orders_day ON orders(order_day DESC, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_items_order ON order_items(order_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, read, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// --- UserRepository implementation ---

const userColumns = `id, name, email, password_hash, role, is_active, created_at`

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.UserRole) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, is_active, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash, role).Scan(&u.ID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var (
		conds []string
		args  []any
	)
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, "is_active = $"+strconv.Itoa(len(args)))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		conds = append(conds, "role = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	const query = `UPDATE users SET name = COALESCE($2, name) WHERE id=$1 RETURNING ` + userColumns
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id, patch.Name))
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role model.UserRole) (*model.User, error) {
	const query = `UPDATE users SET role=$2 WHERE id=$1 RETURNING ` + userColumns
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id, role))
}

func (r *userRepository) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	const query = `UPDATE users SET is_active=$2 WHERE id=$1 RETURNING ` + userColumns
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id, active))
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET password_hash=$2 WHERE id=$1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- RestaurantRepository implementation ---

const restaurantColumns = `id, name, website_url, menu_url, image_url, created_by, created_at, updated_at`

func (r *restaurantRepository) Create(ctx context.Context, name, websiteURL string, menuURL, imageURL *string, createdBy int64) (*model.Restaurant, error) {
	const query = `INSERT INTO restaurants (name, website_url, menu_url, image_url, created_by)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING ` + restaurantColumns
	return r.scanRestaurant(r.storage.pool.QueryRow(ctx, query, name, websiteURL, menuURL, imageURL, createdBy))
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id=$1`
	return r.scanRestaurant(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *restaurantRepository) scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.WebsiteURL, &rest.MenuURL, &rest.ImageURL, &rest.CreatedBy, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.WebsiteURL, &rest.MenuURL, &rest.ImageURL, &rest.CreatedBy, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *restaurantRepository) Update(ctx context.Context, id int64, patch model.RestaurantPatch) (*model.Restaurant, error) {
	const query = `UPDATE restaurants
                   SET name = COALESCE($2, name),
                       website_url = COALESCE($3, website_url),
                       menu_url = COALESCE($4, menu_url),
                       image_url = COALESCE($5, image_url),
                       updated_at = NOW()
                   WHERE id=$1
                   RETURNING ` + restaurantColumns
	return r.scanRestaurant(r.storage.pool.QueryRow(ctx, query, id, patch.Name, patch.WebsiteURL, patch.MenuURL, patch.ImageURL))
}

func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM restaurants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderViewSelect = `SELECT o.id, o.restaurant_id, o.order_day, o.created_by, o.status, o.created_at, o.updated_at, r.name, u.name
                         FROM orders o
                         JOIN restaurants r ON r.id = o.restaurant_id
                         JOIN users u ON u.id = o.created_by`

func scanOrderView(row pgx.Row) (*model.OrderView, error) {
	var v model.OrderView
	err := row.Scan(&v.ID, &v.RestaurantID, &v.Day, &v.CreatedBy, &v.Status, &v.CreatedAt, &v.UpdatedAt, &v.RestaurantName, &v.CreatorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Create inserts a new OPEN order. The partial unique index on
// (order_day) WHERE status='OPEN' makes the one-open-order-per-day
// check-and-insert atomic: of two racing creators exactly one wins.
func (r *orderRepository) Create(ctx context.Context, restaurantID, createdBy int64, day time.Time) (*model.OrderView, error) {
	const query = `WITH ins AS (
                       INSERT INTO orders (restaurant_id, order_day, created_by)
                       VALUES ($1, $2, $3)
                       RETURNING id, restaurant_id, order_day, created_by, status, created_at, updated_at
                   )
                   SELECT ins.id, ins.restaurant_id, ins.order_day, ins.created_by, ins.status, ins.created_at, ins.updated_at, r.name, u.name
                   FROM ins
                   JOIN restaurants r ON r.id = ins.restaurant_id
                   JOIN users u ON u.id = ins.created_by`
	view, err := scanOrderView(r.storage.pool.QueryRow(ctx, query, restaurantID, createdBy, day))
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, domainErrors.ErrOpenOrderExists
		case pgForeignKeyViolation:
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, restaurant_id, order_day, created_by, status, created_at, updated_at FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.RestaurantID, &o.Day, &o.CreatedBy, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetView(ctx context.Context, id int64) (*model.OrderView, error) {
	return scanOrderView(r.storage.pool.QueryRow(ctx, orderViewSelect+` WHERE o.id=$1`, id))
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error) {
	query := orderViewSelect
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, "o.status = $"+strconv.Itoa(len(args)))
	}
	if filter.Day != nil {
		args = append(args, model.DayOf(*filter.Day))
		conds = append(conds, "o.order_day = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY o.order_day DESC, o.created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderView
	for rows.Next() {
		var v model.OrderView
		if err := rows.Scan(&v.ID, &v.RestaurantID, &v.Day, &v.CreatedBy, &v.Status, &v.CreatedAt, &v.UpdatedAt, &v.RestaurantName, &v.CreatorName); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Close flips the order to CLOSED. The WHERE status='OPEN' guard means
// only the call that actually performed the transition sees a row back,
// so a re-close is reported as (current state, nil, false) and callers
// can avoid repeating the close fan-out. The transition and the
// participant snapshot run in one transaction: an item insert cannot
// land between the flip and the snapshot.
func (r *orderRepository) Close(ctx context.Context, id int64) (*model.OrderView, []int64, bool, error) {
	const closeQuery = `WITH upd AS (
                            UPDATE orders SET status='CLOSED', updated_at=NOW()
                            WHERE id=$1 AND status='OPEN'
                            RETURNING id, restaurant_id, order_day, created_by, status, created_at, updated_at
                        )
                        SELECT upd.id, upd.restaurant_id, upd.order_day, upd.created_by, upd.status, upd.created_at, upd.updated_at, r.name, u.name
                        FROM upd
                        JOIN restaurants r ON r.id = upd.restaurant_id
                        JOIN users u ON u.id = upd.created_by`

	var (
		view         *model.OrderView
		participants []int64
		transitioned bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		view, err = scanOrderView(tx.QueryRow(ctx, closeQuery, id))
		if err == nil {
			transitioned = true
			participants, err = scanParticipants(tx.Query(ctx, `SELECT DISTINCT user_id FROM order_items WHERE order_id=$1 ORDER BY user_id`, id))
			return err
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}

		view, err = scanOrderView(tx.QueryRow(ctx, orderViewSelect+` WHERE o.id=$1`, id))
		return err
	})
	if err != nil {
		return nil, nil, false, err
	}
	return view, participants, transitioned, nil
}

func scanParticipants(rows pgx.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderItemRepository implementation ---

const itemViewSelect = `SELECT i.id, i.order_id, i.user_id, i.item_name, i.notes, i.price, i.created_at, i.updated_at, u.name
                        FROM order_items i
                        JOIN users u ON u.id = i.user_id`

func scanItemView(row pgx.Row) (*model.OrderItemView, error) {
	var v model.OrderItemView
	err := row.Scan(&v.ID, &v.OrderID, &v.UserID, &v.ItemName, &v.Notes, &v.Price, &v.CreatedAt, &v.UpdatedAt, &v.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Create inserts the user's line item. The UNIQUE (order_id, user_id)
// constraint closes the duplicate-submission race at the store.
func (r *itemRepository) Create(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error) {
	const query = `WITH ins AS (
                       INSERT INTO order_items (order_id, user_id, item_name, notes, price)
                       VALUES ($1, $2, $3, $4, $5)
                       RETURNING id, order_id, user_id, item_name, notes, price, created_at, updated_at
                   )
                   SELECT ins.id, ins.order_id, ins.user_id, ins.item_name, ins.notes, ins.price, ins.created_at, ins.updated_at, u.name
                   FROM ins
                   JOIN users u ON u.id = ins.user_id`
	view, err := scanItemView(r.storage.pool.QueryRow(ctx, query, orderID, userID, itemName, notes, price))
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, domainErrors.ErrAlreadyExists
		case pgForeignKeyViolation:
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	const query = `SELECT id, order_id, user_id, item_name, notes, price, created_at, updated_at FROM order_items WHERE id=$1`
	var item model.OrderItem
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.OrderID, &item.UserID, &item.ItemName, &item.Notes, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, id int64, patch model.OrderItemPatch) (*model.OrderItemView, error) {
	const query = `WITH upd AS (
                       UPDATE order_items
                       SET item_name = COALESCE($2, item_name),
                           notes = COALESCE($3, notes),
                           price = COALESCE($4, price),
                           updated_at = NOW()
                       WHERE id=$1
                       RETURNING id, order_id, user_id, item_name, notes, price, created_at, updated_at
                   )
                   SELECT upd.id, upd.order_id, upd.user_id, upd.item_name, upd.notes, upd.price, upd.created_at, upd.updated_at, u.name
                   FROM upd
                   JOIN users u ON u.id = upd.user_id`
	return scanItemView(r.storage.pool.QueryRow(ctx, query, id, patch.ItemName, patch.Notes, patch.Price))
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM order_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *itemRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemView, error) {
	query := itemViewSelect + ` WHERE i.order_id=$1 ORDER BY i.created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItemView
	for rows.Next() {
		var v model.OrderItemView
		if err := rows.Scan(&v.ID, &v.OrderID, &v.UserID, &v.ItemName, &v.Notes, &v.Price, &v.CreatedAt, &v.UpdatedAt, &v.UserName); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, userID int64, typ model.NotificationType, message string) (*model.Notification, error) {
	const query = `INSERT INTO notifications (user_id, type, message) VALUES ($1, $2, $3) RETURNING id, read, created_at`
	var n model.Notification
	err := r.storage.pool.QueryRow(ctx, query, userID, typ, message).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	n.UserID = userID
	n.Type = typ
	n.Message = message
	return &n, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	const query = `SELECT id, user_id, type, message, read, created_at FROM notifications WHERE id=$1`
	return r.scanNotification(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *notificationRepository) scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	query := `SELECT id, user_id, type, message, read, created_at FROM notifications WHERE user_id=$1`
	if unreadOnly {
		query += ` AND read=FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := r.storage.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id=$1 AND read=FALSE`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	const query = `UPDATE notifications SET read=TRUE WHERE id=$1 RETURNING id, user_id, type, message, read, created_at`
	return r.scanNotification(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE notifications SET read=TRUE WHERE user_id=$1 AND read=FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
