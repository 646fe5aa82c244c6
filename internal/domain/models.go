package domain

// Nullable columns are pointers; nil is stored and rendered as NULL.

type City struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
}

type User struct {
	ID               int     `db:"id"`
	Name             string  `db:"name"`
	CityID           *int    `db:"city_id"`
	Phone            *string `db:"phone"`
	Email            *string `db:"email"`
	RegistrationDate *string `db:"registration_date"`
	Balance          *int    `db:"balance"`
}

// UserPatch holds the fields a partial update may touch. Nil means keep.
type UserPatch struct {
	CityID *int
	Phone  *string
}

// Apply merges the non-nil fields of p into u.
func (u *User) Apply(p UserPatch) {
	if p.CityID != nil {
		u.CityID = p.CityID
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
}

type Order struct {
	ID            int     `db:"id"`
	UserID        int     `db:"user_id"`
	Item          *string `db:"item"`
	Amount        *int    `db:"amount"`
	Date          *string `db:"date"`
	PaymentMethod *string `db:"payment_method"`
	Status        *string `db:"status"`
}
