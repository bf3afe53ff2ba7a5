package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Numeric columns travel as text in both directions so decimal values
// round-trip without float conversion.
const productColumns = `id, seller_id, title, description, category, condition,
	starting_price::text, currency, bid_increment::text, buy_now_price::text, reserve_price::text,
	start_date, end_date, verified, sold, unsold, COALESCE(winner_id, ''), sold_price::text,
	commission_rate::text, ending_soon_notified, created_at, updated_at`

const bidColumns = `id, product_id, user_id, amount::text, currency, created_at, updated_at`

const userColumns = `id, username, email, role, balance::text, commission_balance::text`

const ledgerColumns = `id, user_id, COALESCE(product_id, ''), COALESCE(request_id, ''), account, kind,
	amount::text, balance_after::text, created_at`

const requestColumns = `id, user_id, amount::text, payment_method, transaction_id, notes, status,
	admin_notes, reviewed_by, created_at, updated_at`

const notificationColumns = `id, user_id, sender_id, product_id, type, title, message, link, is_read, created_at`

// PostgresRepo implements AuctionDB on PostgreSQL. Settlements and balance
// request reviews run in a single transaction each.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func nullDecimalArg(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}

func parseNullDecimal(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// UpsertUser writes a user record. Users belong to the user service; this
// exists for seeding and tests.
func (r *PostgresRepo) UpsertUser(ctx context.Context, u model.User) error {
	const query = `
		INSERT INTO users (id, username, email, role, balance, commission_balance)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, email = EXCLUDED.email,
			role = EXCLUDED.role, balance = EXCLUDED.balance, commission_balance = EXCLUDED.commission_balance`
	if _, err := r.pool.Exec(ctx, query, u.UserID, u.Username, u.Email, string(u.Role),
		u.Balance.String(), u.CommissionBalance.String()); err != nil {
		return fmt.Errorf("postgres: upsert user %s: %w", u.UserID, err)
	}
	return nil
}

// ---- products ----

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		p                          model.Product
		condition                  string
		starting, increment, rate  string
		buyNow, reserve, soldPrice *string
	)
	err := row.Scan(&p.ProductID, &p.SellerID, &p.Title, &p.Description, &p.Category, &condition,
		&starting, &p.Currency, &increment, &buyNow, &reserve,
		&p.StartDate, &p.EndDate, &p.Verified, &p.Sold, &p.Unsold, &p.WinnerID, &soldPrice,
		&rate, &p.EndingSoonNotified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Product{}, err
	}
	p.Condition = model.Condition(condition)

	if p.StartingPrice, err = decimal.NewFromString(starting); err != nil {
		return model.Product{}, fmt.Errorf("parse starting_price: %w", err)
	}
	if p.BidIncrement, err = decimal.NewFromString(increment); err != nil {
		return model.Product{}, fmt.Errorf("parse bid_increment: %w", err)
	}
	if p.CommissionRate, err = decimal.NewFromString(rate); err != nil {
		return model.Product{}, fmt.Errorf("parse commission_rate: %w", err)
	}
	if p.BuyNowPrice, err = parseNullDecimal(buyNow); err != nil {
		return model.Product{}, fmt.Errorf("parse buy_now_price: %w", err)
	}
	if p.ReservePrice, err = parseNullDecimal(reserve); err != nil {
		return model.Product{}, fmt.Errorf("parse reserve_price: %w", err)
	}
	if p.SoldPrice, err = parseNullDecimal(soldPrice); err != nil {
		return model.Product{}, fmt.Errorf("parse sold_price: %w", err)
	}
	return p, nil
}

func (r *PostgresRepo) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateProduct(ctx context.Context, p model.Product) error {
	const query = `
		INSERT INTO products (id, seller_id, title, description, category, condition,
			starting_price, currency, bid_increment, buy_now_price, reserve_price,
			start_date, end_date, verified, commission_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9::numeric, $10::numeric, $11::numeric,
			$12, $13, $14, $15::numeric, $16, $17)`
	_, err := r.pool.Exec(ctx, query,
		p.ProductID, p.SellerID, p.Title, p.Description, p.Category, string(p.Condition),
		p.StartingPrice.String(), p.Currency, p.BidIncrement.String(),
		nullDecimalArg(p.BuyNowPrice), nullDecimalArg(p.ReservePrice),
		p.StartDate, p.EndDate, p.Verified, p.CommissionRate.String(), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("create product %s: %w - duplicate product ID", p.ProductID, biddingerrors.ErrInvalidProduct)
		case pgForeignKeyViolation:
			return fmt.Errorf("create product %s: %w - seller %s", p.ProductID, biddingerrors.ErrUserNotFound, p.SellerID)
		}
		return fmt.Errorf("postgres: create product %s: %w", p.ProductID, err)
	}
	return nil
}

func (r *PostgresRepo) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, productID)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("postgres: get product %s: %w", productID, err)
	}
	return p, nil
}

func (r *PostgresRepo) SetProductVerification(ctx context.Context, productID string, verified bool, commissionRate decimal.Decimal) (model.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products SET verified = $2, commission_rate = $3::numeric, updated_at = NOW()
		WHERE id = $1
		RETURNING `+productColumns, productID, verified, commissionRate.String())
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, fmt.Errorf("verify product %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("postgres: verify product %s: %w", productID, err)
	}
	return p, nil
}

func (r *PostgresRepo) ListEndedActive(ctx context.Context, now time.Time) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE end_date < $1 AND NOT sold AND NOT unsold
		ORDER BY end_date, id`, now)
	if err != nil {
		return nil, fmt.Errorf("postgres: list ended auctions: %w", err)
	}
	return products, nil
}

func (r *PostgresRepo) ListEndingSoon(ctx context.Context, from, to time.Time) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE end_date > $1 AND end_date <= $2
			AND NOT ending_soon_notified AND NOT sold AND NOT unsold
		ORDER BY end_date, id`, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: list ending soon auctions: %w", err)
	}
	return products, nil
}

func (r *PostgresRepo) MarkEndingSoonNotified(ctx context.Context, productID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET ending_soon_notified = TRUE WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("postgres: mark ending soon %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark ending soon %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	return nil
}

func (r *PostgresRepo) ListProductsWonBy(ctx context.Context, userID string) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products WHERE sold AND winner_id = $1 ORDER BY end_date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list products won by %s: %w", userID, err)
	}
	return products, nil
}

func (r *PostgresRepo) ListProductsSoldBy(ctx context.Context, sellerID string) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products WHERE sold AND seller_id = $1 ORDER BY end_date, id`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list products sold by %s: %w", sellerID, err)
	}
	return products, nil
}

// ---- bids ----

func scanBid(row pgx.Row) (model.Bid, error) {
	var (
		b      model.Bid
		amount string
	)
	if err := row.Scan(&b.BidID, &b.ProductID, &b.UserID, &amount, &b.Currency, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return model.Bid{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Bid{}, fmt.Errorf("parse bid amount: %w", err)
	}
	b.Amount = d
	return b, nil
}

func (r *PostgresRepo) RecordBid(ctx context.Context, bid model.Bid) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bids (id, product_id, user_id, amount, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)`,
		bid.BidID, bid.ProductID, bid.UserID, bid.Amount.String(), bid.Currency, bid.CreatedAt, bid.UpdatedAt)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("record bid for product %s: %w", bid.ProductID, biddingerrors.ErrDuplicateBid)
		case pgForeignKeyViolation:
			return fmt.Errorf("record bid for product %s: %w", bid.ProductID, biddingerrors.ErrProductNotFound)
		}
		return fmt.Errorf("postgres: record bid for product %s: %w", bid.ProductID, err)
	}
	return nil
}

func (r *PostgresRepo) UpdateBidAmount(ctx context.Context, bidID string, amount decimal.Decimal, at time.Time) (model.Bid, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE bids SET amount = $2::numeric, updated_at = $3 WHERE id = $1
		RETURNING `+bidColumns, bidID, amount.String(), at)
	b, err := scanBid(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("postgres: update bid %s: %w", bidID, err)
	}
	return b, nil
}

func (r *PostgresRepo) GetUserBid(ctx context.Context, productID, userID string) (model.Bid, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE product_id = $1 AND user_id = $2`, productID, userID)
	b, err := scanBid(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid of user %s for product %s: %w", userID, productID, biddingerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("postgres: get bid of user %s for product %s: %w", userID, productID, err)
	}
	return b, nil
}

func (r *PostgresRepo) GetBidsByProduct(ctx context.Context, productID string) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bidColumns+` FROM bids WHERE product_id = $1 ORDER BY created_at, id`, productID)
	if err != nil {
		return nil, fmt.Errorf("postgres: get bids for product %s: %w", productID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: get bids for product %s: %w", productID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, biddingerrors.ErrNoBids)
	}
	return bids, nil
}

func (r *PostgresRepo) GetWinningBid(ctx context.Context, productID string) (model.Bid, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bidColumns+` FROM bids WHERE product_id = $1
		ORDER BY amount DESC, updated_at ASC LIMIT 1`, productID)
	b, err := scanBid(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w", productID, biddingerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("postgres: get winning bid for product %s: %w", productID, err)
	}
	return b, nil
}

func (r *PostgresRepo) GetBidderIDs(ctx context.Context, productID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT user_id FROM bids WHERE product_id = $1 ORDER BY user_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("postgres: get bidders for product %s: %w", productID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: get bidders for product %s: %w", productID, err)
	}
	return ids, nil
}

func (r *PostgresRepo) GetProductsByBidder(ctx context.Context, userID string) ([]model.Product, error) {
	products, err := r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE id IN (SELECT product_id FROM bids WHERE user_id = $1)
		ORDER BY end_date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: get products for user %s: %w", userID, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("get products for user %s: %w", userID, biddingerrors.ErrUserNoBids)
	}
	return products, nil
}

// ---- users and ledger ----

func scanUser(row pgx.Row) (model.User, error) {
	var (
		u                   model.User
		role                string
		balance, commission string
	)
	if err := row.Scan(&u.UserID, &u.Username, &u.Email, &role, &balance, &commission); err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	var err error
	if u.Balance, err = decimal.NewFromString(balance); err != nil {
		return model.User{}, fmt.Errorf("parse balance: %w", err)
	}
	if u.CommissionBalance, err = decimal.NewFromString(commission); err != nil {
		return model.User{}, fmt.Errorf("parse commission_balance: %w", err)
	}
	return u, nil
}

func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("postgres: get user %s: %w", userID, err)
	}
	return u, nil
}

func (r *PostgresRepo) ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, string(role))
	if err != nil {
		return nil, fmt.Errorf("postgres: list %s users: %w", role, err)
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListLedger(ctx context.Context, userID string, limit int) ([]model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list ledger for %s: %w", userID, err)
	}
	defer rows.Close()

	out := make([]model.LedgerEntry, 0)
	for rows.Next() {
		var (
			e             model.LedgerEntry
			account, kind string
			amount, after string
		)
		if err := rows.Scan(&e.EntryID, &e.UserID, &e.ProductID, &e.RequestID, &account, &kind,
			&amount, &after, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan ledger entry: %w", err)
		}
		e.Account = model.Account(account)
		e.Kind = model.LedgerKind(kind)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("postgres: parse ledger amount: %w", err)
		}
		if e.BalanceAfter, err = decimal.NewFromString(after); err != nil {
			return nil, fmt.Errorf("postgres: parse ledger balance: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// applyMovement increments one account in place and appends its ledger entry.
func applyMovement(ctx context.Context, tx pgx.Tx, m model.BalanceMovement, productID, requestID string, at time.Time) error {
	account := accountOrDefault(m.Account)
	column := "balance"
	if account == model.AccountCommission {
		column = "commission_balance"
	}

	var after string
	query := fmt.Sprintf(`UPDATE users SET %[1]s = %[1]s + $2::numeric WHERE id = $1 RETURNING %[1]s::text`, column)
	err := tx.QueryRow(ctx, query, m.UserID, m.Amount.String()).Scan(&after)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("apply %s movement: %w - user %s", m.Kind, biddingerrors.ErrUserNotFound, m.UserID)
	}
	if err != nil {
		return fmt.Errorf("postgres: apply %s movement for %s: %w", m.Kind, m.UserID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_entries (id, user_id, product_id, request_id, account, kind, amount, balance_after, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7::numeric, $8::numeric, $9)`,
		utils.GenerateID(), m.UserID, productID, requestID, string(account), string(m.Kind),
		m.Amount.String(), after, at)
	if err != nil {
		return fmt.Errorf("postgres: append ledger entry for %s: %w", m.UserID, err)
	}
	return nil
}

// ---- settlement ----

func (r *PostgresRepo) ApplySettlement(ctx context.Context, s model.Settlement) (model.Product, error) {
	var settled model.Product

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		sold := s.Outcome == model.OutcomeSold
		var soldPrice any
		if sold {
			soldPrice = s.Price.String()
		}

		row := tx.QueryRow(ctx, `
			UPDATE products
			SET sold = $2, unsold = $3, winner_id = NULLIF($4, ''), sold_price = $5::numeric, updated_at = $6
			WHERE id = $1 AND NOT sold AND NOT unsold
			RETURNING `+productColumns,
			s.ProductID, sold, !sold, s.WinnerID, soldPrice, s.SettledAt)
		p, err := scanProduct(row)
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, s.ProductID).Scan(&exists); err != nil {
				return fmt.Errorf("postgres: check product %s: %w", s.ProductID, err)
			}
			if !exists {
				return fmt.Errorf("settle product %s: %w", s.ProductID, biddingerrors.ErrProductNotFound)
			}
			return fmt.Errorf("settle product %s: %w", s.ProductID, biddingerrors.ErrAlreadySettled)
		}
		if err != nil {
			return fmt.Errorf("postgres: settle product %s: %w", s.ProductID, err)
		}

		for _, m := range s.Movements {
			if err := applyMovement(ctx, tx, m, s.ProductID, "", s.SettledAt); err != nil {
				return fmt.Errorf("settle product %s: %w", s.ProductID, err)
			}
		}
		settled = p
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return settled, nil
}

// ---- balance requests ----

func scanRequest(row pgx.Row) (model.BalanceRequest, error) {
	var (
		req            model.BalanceRequest
		amount         string
		method, status string
	)
	if err := row.Scan(&req.RequestID, &req.UserID, &amount, &method, &req.TransactionID, &req.Notes,
		&status, &req.AdminNotes, &req.ReviewedBy, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return model.BalanceRequest{}, err
	}
	req.PaymentMethod = model.PaymentMethod(method)
	req.Status = model.RequestStatus(status)
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return model.BalanceRequest{}, fmt.Errorf("parse request amount: %w", err)
	}
	req.Amount = d
	return req, nil
}

func (r *PostgresRepo) CreateBalanceRequest(ctx context.Context, req model.BalanceRequest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO balance_requests (id, user_id, amount, payment_method, transaction_id, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9)`,
		req.RequestID, req.UserID, req.Amount.String(), string(req.PaymentMethod), req.TransactionID,
		req.Notes, string(req.Status), req.CreatedAt, req.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("create balance request: %w - user %s", biddingerrors.ErrUserNotFound, req.UserID)
		}
		return fmt.Errorf("postgres: create balance request %s: %w", req.RequestID, err)
	}
	return nil
}

func (r *PostgresRepo) GetBalanceRequest(ctx context.Context, requestID string) (model.BalanceRequest, error) {
	req, err := scanRequest(r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM balance_requests WHERE id = $1`, requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BalanceRequest{}, fmt.Errorf("get balance request %s: %w", requestID, biddingerrors.ErrRequestNotFound)
	}
	if err != nil {
		return model.BalanceRequest{}, fmt.Errorf("postgres: get balance request %s: %w", requestID, err)
	}
	return req, nil
}

func (r *PostgresRepo) ListBalanceRequests(ctx context.Context, f model.BalanceRequestFilter) ([]model.BalanceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM balance_requests WHERE 1=1`
	args := []any{}
	argIdx := 1

	if f.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, f.UserID)
		argIdx++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(f.Status))
		argIdx++
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, f.Limit)
		argIdx++
	}
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, f.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list balance requests: %w", err)
	}
	defer rows.Close()

	out := make([]model.BalanceRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan balance request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ResolveBalanceRequest(ctx context.Context, review model.BalanceRequestReview) (model.BalanceRequest, error) {
	var resolved model.BalanceRequest

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		req, err := scanRequest(tx.QueryRow(ctx,
			`SELECT `+requestColumns+` FROM balance_requests WHERE id = $1 FOR UPDATE`, review.RequestID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("resolve balance request %s: %w", review.RequestID, biddingerrors.ErrRequestNotFound)
		}
		if err != nil {
			return fmt.Errorf("postgres: load balance request %s: %w", review.RequestID, err)
		}
		if req.Status != model.RequestPending {
			resolved = req
			return fmt.Errorf("resolve balance request %s: %w", review.RequestID, biddingerrors.ErrRequestProcessed)
		}

		if review.Status == model.RequestApproved {
			credit := model.BalanceMovement{
				UserID:  req.UserID,
				Account: model.AccountBalance,
				Kind:    model.LedgerTopUp,
				Amount:  req.Amount,
			}
			if err := applyMovement(ctx, tx, credit, "", req.RequestID, review.ReviewedAt); err != nil {
				return fmt.Errorf("resolve balance request %s: %w", review.RequestID, err)
			}
		}

		resolved, err = scanRequest(tx.QueryRow(ctx, `
			UPDATE balance_requests SET status = $2, admin_notes = $3, reviewed_by = $4, updated_at = $5
			WHERE id = $1
			RETURNING `+requestColumns,
			review.RequestID, string(review.Status), review.AdminNotes, review.ReviewedBy, review.ReviewedAt))
		if err != nil {
			return fmt.Errorf("postgres: update balance request %s: %w", review.RequestID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, biddingerrors.ErrRequestProcessed) {
			return resolved, err
		}
		return model.BalanceRequest{}, err
	}
	return resolved, nil
}

// ---- notifications ----

func scanNotification(row pgx.Row) (model.Notification, error) {
	var (
		n   model.Notification
		typ string
	)
	if err := row.Scan(&n.NotificationID, &n.UserID, &n.SenderID, &n.ProductID, &typ,
		&n.Title, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
		return model.Notification{}, err
	}
	n.Type = model.NotificationType(typ)
	return n, nil
}

func (r *PostgresRepo) CreateNotification(ctx context.Context, n model.Notification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (id, user_id, sender_id, product_id, type, title, message, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.NotificationID, n.UserID, n.SenderID, n.ProductID, string(n.Type), n.Title, n.Message, n.Link, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: create notification for %s: %w", n.UserID, err)
	}
	return nil
}

func (r *PostgresRepo) GetNotification(ctx context.Context, notificationID string) (model.Notification, error) {
	n, err := scanNotification(r.pool.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, notificationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Notification{}, fmt.Errorf("get notification %s: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	if err != nil {
		return model.Notification{}, fmt.Errorf("postgres: get notification %s: %w", notificationID, err)
	}
	return n, nil
}

func (r *PostgresRepo) ListNotifications(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list notifications for %s: %w", userID, err)
	}
	defer rows.Close()

	out := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: count unread for %s: %w", userID, err)
	}
	return count, nil
}

func (r *PostgresRepo) MarkNotificationRead(ctx context.Context, notificationID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, notificationID)
	if err != nil {
		return fmt.Errorf("postgres: mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark notification %s read: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	return nil
}

func (r *PostgresRepo) MarkAllNotificationsRead(ctx context.Context, userID string) (int, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres: mark all notifications read for %s: %w", userID, err)
	}
	return int(tag.RowsAffected()), nil
}

var _ AuctionDB = (*PostgresRepo)(nil)
