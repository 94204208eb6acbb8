//go:build unit

// Package memuow is an in-memory shared.UnitOfWork for command tests. Each
// Within call holds one global lock and rolls back every change when fn fails,
// which makes transactions serial. The repositories mirror the guarded SQL
// statements, so counter and status rules behave as they do in Postgres.
package memuow

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/domain/spot"
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type LotRow struct {
	ID             int64
	Details        lot.Details
	MaxSpots       int
	AvailableSpots int
	TotalParking   int
	TotalRevenue   decimal.Decimal
	IsActive       bool
}

type SpotRow struct {
	ID            int64
	LotID         int64
	Number        int
	Status        spot.Status
	TotalParking  int
	ReservationID *int64
}

type ReservationRow struct {
	ID            int64
	UserID        int64
	LotID         int64
	SpotNumber    int
	VehicleNumber string
	Status        reservation.Status
	CostPerHour   decimal.Decimal
	TotalCost     *decimal.Decimal
	StartTime     time.Time
	EndTime       *time.Time
}

type UserRow struct {
	ID            int64
	Username      string
	Email         string
	Phone         string
	PasswordHash  string
	FullName      string
	Gender        string
	Address       string
	Pincode       string
	Role          user.Role
	IsActive      bool
	TotalParking  int
	ActiveParking int
	LastLogin     *time.Time
}

type state struct {
	Lots         map[int64]LotRow
	Spots        map[int64]SpotRow
	Reservations map[int64]ReservationRow
	Users        map[int64]UserRow
	Events       []shared.Event
	Published    map[uuid.UUID]time.Time
	NextID       int64
}

func (s state) clone() state {
	c := state{
		Lots:         make(map[int64]LotRow, len(s.Lots)),
		Spots:        make(map[int64]SpotRow, len(s.Spots)),
		Reservations: make(map[int64]ReservationRow, len(s.Reservations)),
		Users:        make(map[int64]UserRow, len(s.Users)),
		Events:       append([]shared.Event(nil), s.Events...),
		Published:    make(map[uuid.UUID]time.Time, len(s.Published)),
		NextID:       s.NextID,
	}
	for k, v := range s.Published {
		c.Published[k] = v
	}
	for k, v := range s.Lots {
		c.Lots[k] = v
	}
	for k, v := range s.Spots {
		c.Spots[k] = v
	}
	for k, v := range s.Reservations {
		c.Reservations[k] = v
	}
	for k, v := range s.Users {
		c.Users[k] = v
	}
	return c
}

// Store implements shared.UnitOfWork.
type Store struct {
	mu        sync.Mutex
	st        state
	lockOrder []string

	// FailOn makes the named repository operation return an error, which
	// exercises the rollback path.
	FailOn string
}

func New() *Store {
	return &Store{st: state{
		Lots:         map[int64]LotRow{},
		Spots:        map[int64]SpotRow{},
		Reservations: map[int64]ReservationRow{},
		Users:        map[int64]UserRow{},
		Published:    map[uuid.UUID]time.Time{},
		NextID:       1,
	}}
}

var ErrInjected = errors.New("injected failure")

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	tx := &memTx{st: &work, failOn: s.FailOn}
	err := fn(ctx, tx)
	s.lockOrder = tx.locks
	if err != nil {
		return err
	}
	s.st = work
	return nil
}

// LockOrder returns the row kinds the last transaction locked, in the order
// it first locked them.
func (s *Store) LockOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lockOrder...)
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

// Seeding and inspection helpers. They bypass the transaction path.

func (s *Store) SeedLot(row LotRow, spotStatuses ...spot.Status) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = s.st.nextID()
	if row.TotalRevenue.IsZero() {
		row.TotalRevenue = decimal.Zero
	}
	available := 0
	for i, status := range spotStatuses {
		id := s.st.nextID()
		s.st.Spots[id] = SpotRow{ID: id, LotID: row.ID, Number: i + 1, Status: status}
		if status == spot.StatusAvailable {
			available++
		}
	}
	if len(spotStatuses) > 0 {
		row.MaxSpots = len(spotStatuses)
		row.AvailableSpots = available
	}
	s.st.Lots[row.ID] = row
	return row.ID
}

func (s *Store) SeedUser(row UserRow) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = s.st.nextID()
	if row.Role == "" {
		row.Role = user.RoleUser
	}
	s.st.Users[row.ID] = row
	return row.ID
}

func (s *Store) Lot(id int64) LotRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Lots[id]
}

func (s *Store) User(id int64) UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Users[id]
}

func (s *Store) Reservation(id int64) ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Reservations[id]
}

// Spots returns the spots of a lot ordered by number.
func (s *Store) Spots(lotID int64) []SpotRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.spotsOf(lotID)
}

func (s *Store) Events() []shared.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.Event(nil), s.st.Events...)
}

// PublishedAt reports when the relay marked the event published.
func (s *Store) PublishedAt(id uuid.UUID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.st.Published[id]
	return at, ok
}

// AppendEvent queues an outbox event directly.
func (s *Store) AppendEvent(e shared.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Events = append(s.st.Events, e)
}

// SetSpotStatus simulates a spot taken outside the lifecycle, e.g. by a
// concurrent booking that holds the row lock.
func (s *Store) SetSpotStatus(lotID int64, number int, status spot.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sp := range s.st.Spots {
		if sp.LotID == lotID && sp.Number == number {
			sp.Status = status
			s.st.Spots[id] = sp
		}
	}
}

// SetSpotReservation overwrites the spot's back-reference to the
// reservation parked on it, leaving its status alone.
func (s *Store) SetSpotReservation(lotID int64, number int, reservationID *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sp := range s.st.Spots {
		if sp.LotID == lotID && sp.Number == number {
			sp.ReservationID = reservationID
			s.st.Spots[id] = sp
		}
	}
}

func (st *state) nextID() int64 {
	id := st.NextID
	st.NextID++
	return id
}

func (st *state) spotsOf(lotID int64) []SpotRow {
	var out []SpotRow
	for _, sp := range st.Spots {
		if sp.LotID == lotID {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

type memTx struct {
	st     *state
	failOn string
	locks  []string
}

// lock records the first time a transaction touches a row kind with a
// locking read or a write.
func (t *memTx) lock(kind string) {
	if !slices.Contains(t.locks, kind) {
		t.locks = append(t.locks, kind)
	}
}

func (t *memTx) fail(op string) error {
	if t.failOn == op {
		return infra.WrapRepoErr(op, ErrInjected)
	}
	return nil
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func checkViolation(msg string) error {
	return infra.WrapRepoErr(msg, &pgconn.PgError{Code: "23514"})
}

func (t *memTx) Lots() shared.LotRepository                 { return lotRepo{t} }
func (t *memTx) Spots() shared.SpotRepository               { return spotRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t} }
func (t *memTx) Events() shared.EventRepository             { return eventRepo{t} }

type lotRepo struct{ t *memTx }

func (r lotRepo) Create(_ context.Context, l *lot.Lot) (int64, error) {
	if err := r.t.fail("Lots.Create"); err != nil {
		return 0, err
	}
	for _, row := range r.t.st.Lots {
		if row.Details.Name == l.Name() && row.Details.Pincode == l.Pincode() {
			return 0, infra.WrapRepoErr("duplicate lot", &pgconn.PgError{Code: "23505", ConstraintName: "parking_lots_name_pincode_key"})
		}
	}
	id := r.t.st.nextID()
	r.t.st.Lots[id] = LotRow{
		ID:             id,
		Details:        l.Details(),
		MaxSpots:       l.MaxSpots(),
		AvailableSpots: l.MaxSpots(),
		TotalRevenue:   decimal.Zero,
		IsActive:       true,
	}
	return id, nil
}

func (r lotRepo) FindByID(_ context.Context, id int64) (*lot.Lot, error) {
	row, ok := r.t.st.Lots[id]
	if !ok {
		return nil, notFound("lot")
	}
	now := time.Time{}
	return lot.ReconstructLot(row.ID, row.Details, row.MaxSpots, row.AvailableSpots, row.TotalParking,
		row.TotalRevenue, row.IsActive, now, now), nil
}

func (r lotRepo) FindByIDForUpdate(ctx context.Context, id int64) (*lot.Lot, error) {
	r.t.lock("lot")
	return r.FindByID(ctx, id)
}

func (r lotRepo) UpdateDetails(_ context.Context, l *lot.Lot) error {
	r.t.lock("lot")
	row, ok := r.t.st.Lots[l.ID()]
	if !ok {
		return notFound("lot")
	}
	for id, other := range r.t.st.Lots {
		if id != l.ID() && other.Details.Name == l.Name() && other.Details.Pincode == l.Pincode() {
			return infra.WrapRepoErr("duplicate lot", &pgconn.PgError{Code: "23505", ConstraintName: "parking_lots_name_pincode_key"})
		}
	}
	row.Details = l.Details()
	r.t.st.Lots[l.ID()] = row
	return nil
}

func (r lotRepo) UpdateCapacity(_ context.Context, l *lot.Lot) error {
	r.t.lock("lot")
	if err := r.t.fail("Lots.UpdateCapacity"); err != nil {
		return err
	}
	row, ok := r.t.st.Lots[l.ID()]
	if !ok {
		return notFound("lot")
	}
	if l.AvailableSpots() < 0 || l.AvailableSpots() > l.MaxSpots() {
		return checkViolation("available_spots out of range")
	}
	row.MaxSpots = l.MaxSpots()
	row.AvailableSpots = l.AvailableSpots()
	r.t.st.Lots[l.ID()] = row
	return nil
}

func (r lotRepo) SetActive(_ context.Context, id int64, active bool) error {
	r.t.lock("lot")
	row, ok := r.t.st.Lots[id]
	if !ok {
		return notFound("lot")
	}
	row.IsActive = active
	r.t.st.Lots[id] = row
	return nil
}

func (r lotRepo) TakeSpot(_ context.Context, id int64) error {
	r.t.lock("lot")
	row := r.t.st.Lots[id]
	if row.AvailableSpots <= 0 {
		return lot.ErrLotFull
	}
	row.AvailableSpots--
	row.TotalParking++
	r.t.st.Lots[id] = row
	return nil
}

func (r lotRepo) ReturnSpot(_ context.Context, id int64, revenue decimal.Decimal) error {
	r.t.lock("lot")
	if err := r.t.fail("Lots.ReturnSpot"); err != nil {
		return err
	}
	row := r.t.st.Lots[id]
	if row.AvailableSpots >= row.MaxSpots {
		return checkViolation("lot availability already at capacity")
	}
	row.AvailableSpots++
	row.TotalRevenue = row.TotalRevenue.Add(revenue)
	r.t.st.Lots[id] = row
	return nil
}

type spotRepo struct{ t *memTx }

func (r spotRepo) CreateBatch(_ context.Context, lotID int64, numbers []int) error {
	for _, n := range numbers {
		for _, sp := range r.t.st.Spots {
			if sp.LotID == lotID && sp.Number == n {
				return infra.WrapRepoErr("duplicate spot", &pgconn.PgError{Code: "23505", ConstraintName: "parking_spots_lot_number_key"})
			}
		}
		id := r.t.st.nextID()
		r.t.st.Spots[id] = SpotRow{ID: id, LotID: lotID, Number: n, Status: spot.StatusAvailable}
	}
	return nil
}

func (r spotRepo) Numbers(_ context.Context, lotID int64) ([]int, error) {
	var out []int
	for _, sp := range r.t.st.spotsOf(lotID) {
		out = append(out, sp.Number)
	}
	return out, nil
}

func (r spotRepo) ClaimAvailable(_ context.Context, lotID int64) (spot.Handle, error) {
	r.t.lock("spot")
	for _, sp := range r.t.st.spotsOf(lotID) {
		if sp.Status == spot.StatusAvailable {
			return spot.Handle{ID: sp.ID, LotID: lotID, SpotNumber: sp.Number}, nil
		}
	}
	return spot.Handle{}, lot.ErrLotFull
}

func (r spotRepo) Occupy(_ context.Context, h spot.Handle, reservationID int64) error {
	r.t.lock("spot")
	sp, ok := r.t.st.Spots[h.ID]
	if !ok || sp.Status != spot.StatusAvailable {
		return checkViolation("claimed spot is no longer available")
	}
	sp.Status = spot.StatusOccupied
	sp.ReservationID = &reservationID
	sp.TotalParking++
	r.t.st.Spots[h.ID] = sp
	return nil
}

func (r spotRepo) FindForUpdate(_ context.Context, lotID int64, number int) (*spot.Spot, error) {
	r.t.lock("spot")
	for _, sp := range r.t.st.Spots {
		if sp.LotID == lotID && sp.Number == number {
			now := time.Time{}
			return spot.ReconstructSpot(sp.ID, sp.LotID, sp.Number, sp.Status, sp.TotalParking, sp.ReservationID, now, now), nil
		}
	}
	return nil, notFound("spot")
}

func (r spotRepo) Free(_ context.Context, spotID int64) error {
	r.t.lock("spot")
	sp, ok := r.t.st.Spots[spotID]
	if !ok {
		return notFound("spot")
	}
	sp.Status = spot.StatusAvailable
	sp.ReservationID = nil
	r.t.st.Spots[spotID] = sp
	return nil
}

func (r spotRepo) LockReclaimable(_ context.Context, lotID int64, limit int) ([]int64, error) {
	r.t.lock("spot")
	spots := r.t.st.spotsOf(lotID)
	var ids []int64
	for i := len(spots) - 1; i >= 0 && len(ids) < limit; i-- {
		if spots[i].Status == spot.StatusAvailable {
			ids = append(ids, spots[i].ID)
		}
	}
	return ids, nil
}

func (r spotRepo) DeleteAvailable(_ context.Context, ids []int64) (int, error) {
	r.t.lock("spot")
	for _, id := range ids {
		if sp, ok := r.t.st.Spots[id]; ok && sp.Status == spot.StatusOccupied {
			// trigger on an occupied row aborts the whole statement
			return 0, spot.ErrSpotOccupied
		}
	}
	n := 0
	for _, id := range ids {
		if _, ok := r.t.st.Spots[id]; ok {
			delete(r.t.st.Spots, id)
			n++
		}
	}
	return n, nil
}

type reservationRepo struct{ t *memTx }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if err := r.t.fail("Reservations.Create"); err != nil {
		return 0, err
	}
	id := r.t.st.nextID()
	r.t.st.Reservations[id] = ReservationRow{
		ID:            id,
		UserID:        res.UserID(),
		LotID:         res.LotID(),
		SpotNumber:    res.SpotNumber(),
		VehicleNumber: res.VehicleNumber().String(),
		Status:        res.Status(),
		CostPerHour:   res.CostPerHour(),
		StartTime:     res.StartTime(),
	}
	return id, nil
}

func (r reservationRepo) FindForUpdate(_ context.Context, id, userID int64) (*reservation.Reservation, error) {
	r.t.lock("reservation")
	row, ok := r.t.st.Reservations[id]
	if !ok || row.UserID != userID {
		return nil, notFound("reservation")
	}
	vehicle, err := reservation.NewVehicleNumber(row.VehicleNumber)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(row.ID, row.UserID, row.LotID, row.SpotNumber, vehicle, row.Status,
		row.CostPerHour, row.TotalCost, row.StartTime, row.EndTime, row.StartTime, row.StartTime), nil
}

func (r reservationRepo) Close(_ context.Context, res *reservation.Reservation) error {
	r.t.lock("reservation")
	if res.IsOpen() {
		return reservation.ErrInvalidStatus
	}
	row := r.t.st.Reservations[res.ID()]
	if row.Status != reservation.StatusOpen {
		return reservation.ErrAlreadyCompleted
	}
	row.Status = res.Status()
	row.EndTime = res.EndTime()
	row.TotalCost = res.TotalCost()
	r.t.st.Reservations[res.ID()] = row
	return nil
}

type userRepo struct{ t *memTx }

func (r userRepo) Create(_ context.Context, u *user.User) (int64, error) {
	for _, row := range r.t.st.Users {
		switch {
		case row.Username == u.Username().Value():
			return 0, infra.WrapRepoErr("duplicate user", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
		case row.Email == u.Email().Value():
			return 0, infra.WrapRepoErr("duplicate user", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		case row.Phone == u.Phone().Value():
			return 0, infra.WrapRepoErr("duplicate user", &pgconn.PgError{Code: "23505", ConstraintName: "users_phone_key"})
		}
	}
	id := r.t.st.nextID()
	r.t.st.Users[id] = UserRow{
		ID:           id,
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		Phone:        u.Phone().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName(),
		Role:         u.Role(),
		IsActive:     u.IsActive(),
	}
	row := r.t.st.Users[id]
	setProfile(&row, u)
	r.t.st.Users[id] = row
	return id, nil
}

func setProfile(row *UserRow, u *user.User) {
	row.FullName = u.FullName()
	row.Address = u.Address()
	row.Gender, row.Pincode = "", ""
	if g := u.Gender(); g != nil {
		row.Gender = string(*g)
	}
	if p := u.Pincode(); p != nil {
		row.Pincode = p.String()
	}
}

func (r userRepo) toDomain(row UserRow) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(row.Phone)
	if err != nil {
		return nil, err
	}
	profile := user.Profile{FullName: row.FullName, Address: row.Address}
	if row.Gender != "" {
		g, err := user.NewGender(row.Gender)
		if err != nil {
			return nil, err
		}
		profile.Gender = &g
	}
	if row.Pincode != "" {
		p, err := address.NewPincode(row.Pincode)
		if err != nil {
			return nil, err
		}
		profile.Pincode = &p
	}
	now := time.Time{}
	return user.ReconstructUser(row.ID, username, email, phone, row.PasswordHash, row.Role,
		profile, row.IsActive, row.TotalParking, row.ActiveParking,
		row.LastLogin, now, now), nil
}

func (r userRepo) FindByUsernameForUpdate(_ context.Context, username user.Username) (*user.User, error) {
	r.t.lock("user")
	for _, row := range r.t.st.Users {
		if row.Username == username.Value() {
			return r.toDomain(row)
		}
	}
	return nil, notFound("user")
}

func (r userRepo) UpdateProfile(_ context.Context, u *user.User) error {
	r.t.lock("user")
	if err := r.t.fail("Users.UpdateProfile"); err != nil {
		return err
	}
	row, ok := r.t.st.Users[u.ID()]
	if !ok {
		return notFound("user")
	}
	for id, other := range r.t.st.Users {
		if id == u.ID() {
			continue
		}
		switch {
		case other.Email == u.Email().Value():
			return infra.WrapRepoErr("duplicate user", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		case other.Phone == u.Phone().Value():
			return infra.WrapRepoErr("duplicate user", &pgconn.PgError{Code: "23505", ConstraintName: "users_phone_key"})
		}
	}
	row.Email = u.Email().Value()
	row.Phone = u.Phone().Value()
	setProfile(&row, u)
	r.t.st.Users[u.ID()] = row
	return nil
}

func (r userRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.t.lock("user")
	row, ok := r.t.st.Users[id]
	if !ok {
		return notFound("user")
	}
	row.PasswordHash = passwordHash
	r.t.st.Users[id] = row
	return nil
}

func (r userRepo) FindByIDForUpdate(_ context.Context, id int64) (*user.User, error) {
	r.t.lock("user")
	row, ok := r.t.st.Users[id]
	if !ok {
		return nil, notFound("user")
	}
	return r.toDomain(row)
}

func (r userRepo) FindByIdentifier(_ context.Context, identifier user.Identifier) (*user.User, error) {
	v := identifier.Value()
	for _, row := range r.t.st.Users {
		if row.Username == v || row.Email == v || row.Phone == v {
			return r.toDomain(row)
		}
	}
	return nil, notFound("user")
}

func (r userRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	r.t.lock("user")
	if err := r.t.fail("Users.UpdateLastLogin"); err != nil {
		return err
	}
	row := r.t.st.Users[id]
	row.LastLogin = &at
	r.t.st.Users[id] = row
	return nil
}

func (r userRepo) SetActive(_ context.Context, id int64, active bool) error {
	r.t.lock("user")
	row, ok := r.t.st.Users[id]
	if !ok {
		return notFound("user")
	}
	row.IsActive = active
	r.t.st.Users[id] = row
	return nil
}

func (r userRepo) StartParking(_ context.Context, id int64) error {
	r.t.lock("user")
	row, ok := r.t.st.Users[id]
	if !ok || !row.IsActive {
		return user.ErrUserInactive
	}
	row.TotalParking++
	row.ActiveParking++
	r.t.st.Users[id] = row
	return nil
}

func (r userRepo) EndParking(_ context.Context, id int64) error {
	r.t.lock("user")
	row := r.t.st.Users[id]
	if row.ActiveParking <= 0 {
		return checkViolation("user has no active parking")
	}
	row.ActiveParking--
	r.t.st.Users[id] = row
	return nil
}

type eventRepo struct{ t *memTx }

func (r eventRepo) Append(_ context.Context, e shared.Event) error {
	if err := r.t.fail("Events.Append"); err != nil {
		return err
	}
	r.t.st.Events = append(r.t.st.Events, e)
	return nil
}

func (r eventRepo) FetchPending(_ context.Context, limit, maxAttempts int) ([]shared.Event, error) {
	var out []shared.Event
	for _, e := range r.t.st.Events {
		if len(out) == limit {
			break
		}
		if _, done := r.t.st.Published[e.ID]; !done && e.Attempts < maxAttempts {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r eventRepo) MarkPublished(_ context.Context, id uuid.UUID, at time.Time) error {
	r.t.st.Published[id] = at
	return nil
}

func (r eventRepo) MarkFailed(_ context.Context, id uuid.UUID, _ string) error {
	for i := range r.t.st.Events {
		if r.t.st.Events[i].ID == id {
			r.t.st.Events[i].Attempts++
		}
	}
	return nil
}

func (r eventRepo) CountPending(context.Context) (int64, error) {
	var n int64
	for _, e := range r.t.st.Events {
		if _, done := r.t.st.Published[e.ID]; !done {
			n++
		}
	}
	return n, nil
}
