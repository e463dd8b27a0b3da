package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by user_id, plus "email:<email>"
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) add(user *model.User) *model.User {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+user.Email] = user
	}
	return user
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByNumeroEtudiant(_ context.Context, numero string) (*model.User, error) {
	for k, u := range m.users {
		if k == u.UserID && u.NumeroEtudiant == numero {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for k, u := range m.users {
		if k == u.UserID {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var result []model.User
	for k, u := range m.users {
		if k == u.UserID && u.Role == role {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListByFormationAndRole(_ context.Context, formationID string, role model.Role) ([]model.User, error) {
	var result []model.User
	for k, u := range m.users {
		if k == u.UserID && u.FormationID == formationID && u.Role == role && u.Actif {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListByDepartementAndRole(_ context.Context, departementID string, role model.Role) ([]model.User, error) {
	var result []model.User
	for k, u := range m.users {
		if k == u.UserID && u.DepartementID == departementID && u.Role == role {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.users["email:"+email]
	return ok, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock DepartementRepository ──

type mockDepartementRepo struct {
	depts map[string]*model.Departement
	seq   int
}

func newMockDepartementRepo() *mockDepartementRepo {
	return &mockDepartementRepo{depts: make(map[string]*model.Departement)}
}

func (m *mockDepartementRepo) Create(_ context.Context, dept *model.Departement) error {
	if dept.DepartementID == "" {
		m.seq++
		dept.DepartementID = fmt.Sprintf("dept-%d", m.seq)
	}
	m.depts[dept.DepartementID] = dept
	return nil
}

func (m *mockDepartementRepo) GetByID(_ context.Context, id string) (*model.Departement, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartementRepo) GetByNom(_ context.Context, nom string) (*model.Departement, error) {
	for _, d := range m.depts {
		if d.Nom == nom {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartementRepo) List(_ context.Context) ([]model.Departement, error) {
	var result []model.Departement
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDepartementRepo) ListActive(_ context.Context) ([]model.Departement, error) {
	var result []model.Departement
	for _, d := range m.depts {
		if d.Actif {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDepartementRepo) Update(_ context.Context, dept *model.Departement) error {
	m.depts[dept.DepartementID] = dept
	return nil
}

func (m *mockDepartementRepo) Delete(_ context.Context, id string) error {
	delete(m.depts, id)
	return nil
}

// ── Mock FormationRepository ──

type mockFormationRepo struct {
	formations map[string]*model.Formation
	seq        int
}

func newMockFormationRepo() *mockFormationRepo {
	return &mockFormationRepo{formations: make(map[string]*model.Formation)}
}

func (m *mockFormationRepo) Create(_ context.Context, formation *model.Formation) error {
	if formation.FormationID == "" {
		m.seq++
		formation.FormationID = fmt.Sprintf("formation-%d", m.seq)
	}
	m.formations[formation.FormationID] = formation
	return nil
}

func (m *mockFormationRepo) GetByID(_ context.Context, id string) (*model.Formation, error) {
	if f, ok := m.formations[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFormationRepo) List(_ context.Context) ([]model.Formation, error) {
	var result []model.Formation
	for _, f := range m.formations {
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockFormationRepo) ListByDepartement(_ context.Context, departementID string) ([]model.Formation, error) {
	var result []model.Formation
	for _, f := range m.formations {
		if f.DepartementID == departementID {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockFormationRepo) Update(_ context.Context, formation *model.Formation) error {
	m.formations[formation.FormationID] = formation
	return nil
}

func (m *mockFormationRepo) Delete(_ context.Context, id string) error {
	delete(m.formations, id)
	return nil
}

// ── Mock GroupeRepository ──

type mockGroupeRepo struct {
	groupes map[string]*model.Groupe
	seq     int
}

func newMockGroupeRepo() *mockGroupeRepo {
	return &mockGroupeRepo{groupes: make(map[string]*model.Groupe)}
}

func (m *mockGroupeRepo) Create(_ context.Context, groupe *model.Groupe) error {
	if groupe.GroupeID == "" {
		m.seq++
		groupe.GroupeID = fmt.Sprintf("groupe-%d", m.seq)
	}
	m.groupes[groupe.GroupeID] = groupe
	return nil
}

func (m *mockGroupeRepo) GetByID(_ context.Context, id string) (*model.Groupe, error) {
	if g, ok := m.groupes[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupeRepo) List(_ context.Context) ([]model.Groupe, error) {
	var result []model.Groupe
	for _, g := range m.groupes {
		result = append(result, *g)
	}
	return result, nil
}

func (m *mockGroupeRepo) ListByFormation(_ context.Context, formationID string) ([]model.Groupe, error) {
	var result []model.Groupe
	for _, g := range m.groupes {
		if g.FormationID == formationID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGroupeRepo) Update(_ context.Context, groupe *model.Groupe) error {
	m.groupes[groupe.GroupeID] = groupe
	return nil
}

func (m *mockGroupeRepo) Delete(_ context.Context, id string) error {
	delete(m.groupes, id)
	return nil
}

// ── Mock GroupeEtudiantRepository ──

type mockGroupeEtudiantRepo struct {
	users        *mockUserRepo
	affectations map[string]*model.GroupeEtudiant // key: etudiantID|groupeID
}

func newMockGroupeEtudiantRepo(users *mockUserRepo) *mockGroupeEtudiantRepo {
	return &mockGroupeEtudiantRepo{
		users:        users,
		affectations: make(map[string]*model.GroupeEtudiant),
	}
}

func membershipKey(etudiantID, groupeID string) string {
	return etudiantID + "|" + groupeID
}

func (m *mockGroupeEtudiantRepo) Create(_ context.Context, a *model.GroupeEtudiant) error {
	m.affectations[membershipKey(a.EtudiantID, a.GroupeID)] = a
	return nil
}

func (m *mockGroupeEtudiantRepo) ListByGroupe(_ context.Context, groupeID string) ([]model.GroupeEtudiant, error) {
	var result []model.GroupeEtudiant
	for _, a := range m.affectations {
		if a.GroupeID == groupeID {
			copied := *a
			if m.users != nil {
				if u, ok := m.users.users[a.EtudiantID]; ok {
					copied.Etudiant = u
				}
			}
			result = append(result, copied)
		}
	}
	return result, nil
}

func (m *mockGroupeEtudiantRepo) ListByEtudiant(_ context.Context, etudiantID string) ([]model.GroupeEtudiant, error) {
	var result []model.GroupeEtudiant
	for _, a := range m.affectations {
		if a.EtudiantID == etudiantID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockGroupeEtudiantRepo) Exists(_ context.Context, etudiantID, groupeID string) (bool, error) {
	_, ok := m.affectations[membershipKey(etudiantID, groupeID)]
	return ok, nil
}

func (m *mockGroupeEtudiantRepo) CountByGroupe(_ context.Context, groupeID string) (int64, error) {
	var count int64
	for _, a := range m.affectations {
		if a.GroupeID == groupeID {
			count++
		}
	}
	return count, nil
}

func (m *mockGroupeEtudiantRepo) Delete(_ context.Context, etudiantID, groupeID string) error {
	delete(m.affectations, membershipKey(etudiantID, groupeID))
	return nil
}

// ── Mock MatiereRepository ──

type mockMatiereRepo struct {
	matieres map[string]*model.Matiere
	seq      int
}

func newMockMatiereRepo() *mockMatiereRepo {
	return &mockMatiereRepo{matieres: make(map[string]*model.Matiere)}
}

func (m *mockMatiereRepo) Create(_ context.Context, matiere *model.Matiere) error {
	if matiere.MatiereID == "" {
		m.seq++
		matiere.MatiereID = fmt.Sprintf("matiere-%d", m.seq)
	}
	m.matieres[matiere.MatiereID] = matiere
	return nil
}

func (m *mockMatiereRepo) GetByID(_ context.Context, id string) (*model.Matiere, error) {
	if mat, ok := m.matieres[id]; ok {
		return mat, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMatiereRepo) GetByCode(_ context.Context, code string) (*model.Matiere, error) {
	for _, mat := range m.matieres {
		if mat.Code == code {
			return mat, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMatiereRepo) List(_ context.Context) ([]model.Matiere, error) {
	var result []model.Matiere
	for _, mat := range m.matieres {
		result = append(result, *mat)
	}
	return result, nil
}

func (m *mockMatiereRepo) ListByFormation(_ context.Context, formationID string) ([]model.Matiere, error) {
	var result []model.Matiere
	for _, mat := range m.matieres {
		if mat.FormationID == formationID && mat.Actif {
			result = append(result, *mat)
		}
	}
	return result, nil
}

func (m *mockMatiereRepo) ListByEnseignant(_ context.Context, enseignantID string) ([]model.Matiere, error) {
	var result []model.Matiere
	for _, mat := range m.matieres {
		if mat.EnseignantID == enseignantID && mat.Actif {
			result = append(result, *mat)
		}
	}
	return result, nil
}

func (m *mockMatiereRepo) Update(_ context.Context, matiere *model.Matiere) error {
	m.matieres[matiere.MatiereID] = matiere
	return nil
}

func (m *mockMatiereRepo) Delete(_ context.Context, id string) error {
	delete(m.matieres, id)
	return nil
}

// ── Mock SeanceRepository ──

type mockSeanceRepo struct {
	matieres *mockMatiereRepo
	seances  map[string]*model.Seance
	seq      int
}

func newMockSeanceRepo(matieres *mockMatiereRepo) *mockSeanceRepo {
	return &mockSeanceRepo{matieres: matieres, seances: make(map[string]*model.Seance)}
}

func (m *mockSeanceRepo) Create(_ context.Context, seance *model.Seance) error {
	if seance.SeanceID == "" {
		m.seq++
		seance.SeanceID = fmt.Sprintf("seance-%d", m.seq)
	}
	m.seances[seance.SeanceID] = seance
	return nil
}

func (m *mockSeanceRepo) GetByID(_ context.Context, id string) (*model.Seance, error) {
	s, ok := m.seances[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	if m.matieres != nil {
		if mat, ok := m.matieres.matieres[s.MatiereID]; ok {
			copied.Matiere = mat
		}
	}
	return &copied, nil
}

func (m *mockSeanceRepo) List(_ context.Context) ([]model.Seance, error) {
	var result []model.Seance
	for _, s := range m.seances {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSeanceRepo) ListByEnseignant(_ context.Context, enseignantID string) ([]model.Seance, error) {
	var result []model.Seance
	for _, s := range m.seances {
		if s.EnseignantID == enseignantID {
			copied := *s
			if m.matieres != nil {
				if mat, ok := m.matieres.matieres[s.MatiereID]; ok {
					copied.Matiere = mat
				}
			}
			result = append(result, copied)
		}
	}
	return result, nil
}

func (m *mockSeanceRepo) ListByMatiere(_ context.Context, matiereID string) ([]model.Seance, error) {
	var result []model.Seance
	for _, s := range m.seances {
		if s.MatiereID == matiereID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSeanceRepo) ListByGroupe(_ context.Context, groupeID string) ([]model.Seance, error) {
	var result []model.Seance
	for _, s := range m.seances {
		if s.GroupeID != nil && *s.GroupeID == groupeID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSeanceRepo) ListUpcomingByEnseignant(_ context.Context, enseignantID string, from time.Time) ([]model.Seance, error) {
	var result []model.Seance
	for _, s := range m.seances {
		if s.EnseignantID == enseignantID && !s.DateDebut.Before(from) && !s.Annulee {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSeanceRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.Seance, error) {
	var result []model.Seance
	for _, s := range m.seances {
		if !s.DateDebut.Before(from) && s.DateDebut.Before(to) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSeanceRepo) Update(_ context.Context, seance *model.Seance) error {
	stored := *seance
	stored.Matiere = nil
	stored.Enseignant = nil
	stored.Groupe = nil
	m.seances[seance.SeanceID] = &stored
	return nil
}

func (m *mockSeanceRepo) Delete(_ context.Context, id string) error {
	delete(m.seances, id)
	return nil
}

// ── Mock PresenceRepository ──

type mockPresenceRepo struct {
	seances   *mockSeanceRepo
	presences map[string]*model.Presence // keyed by presence_id
	seq       int
}

func newMockPresenceRepo(seances *mockSeanceRepo) *mockPresenceRepo {
	return &mockPresenceRepo{seances: seances, presences: make(map[string]*model.Presence)}
}

func (m *mockPresenceRepo) Create(_ context.Context, presence *model.Presence) error {
	if presence.PresenceID == "" {
		m.seq++
		presence.PresenceID = fmt.Sprintf("presence-%d", m.seq)
	}
	m.presences[presence.PresenceID] = presence
	return nil
}

func (m *mockPresenceRepo) GetByID(_ context.Context, id string) (*model.Presence, error) {
	p, ok := m.presences[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	if m.seances != nil {
		if s, ok := m.seances.seances[p.SeanceID]; ok {
			copied.Seance = s
		}
	}
	return &copied, nil
}

func (m *mockPresenceRepo) GetBySeanceAndEtudiant(_ context.Context, seanceID, etudiantID string) (*model.Presence, error) {
	for _, p := range m.presences {
		if p.SeanceID == seanceID && p.EtudiantID == etudiantID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPresenceRepo) ListBySeance(_ context.Context, seanceID string) ([]model.Presence, error) {
	var result []model.Presence
	for _, p := range m.presences {
		if p.SeanceID == seanceID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPresenceRepo) ListByEtudiant(_ context.Context, etudiantID string) ([]model.Presence, error) {
	var result []model.Presence
	for _, p := range m.presences {
		if p.EtudiantID == etudiantID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPresenceRepo) ListByEtudiantAndMatiere(_ context.Context, etudiantID, matiereID string) ([]model.Presence, error) {
	var result []model.Presence
	for _, p := range m.presences {
		if p.EtudiantID == etudiantID && m.matiereOf(p) == matiereID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPresenceRepo) ListAbsencesByEtudiant(_ context.Context, etudiantID string) ([]model.Presence, error) {
	var result []model.Presence
	for _, p := range m.presences {
		if p.EtudiantID == etudiantID && p.Statut == model.StatutAbsent {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPresenceRepo) ExistsBySeanceAndEtudiant(_ context.Context, seanceID, etudiantID string) (bool, error) {
	for _, p := range m.presences {
		if p.SeanceID == seanceID && p.EtudiantID == etudiantID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPresenceRepo) CountBySeanceAndStatut(_ context.Context, seanceID string, statut model.StatutPresence) (int64, error) {
	var count int64
	for _, p := range m.presences {
		if p.SeanceID == seanceID && p.Statut == statut {
			count++
		}
	}
	return count, nil
}

func (m *mockPresenceRepo) CountByEtudiantAndStatut(_ context.Context, etudiantID string, statut model.StatutPresence) (int64, error) {
	var count int64
	for _, p := range m.presences {
		if p.EtudiantID == etudiantID && p.Statut == statut {
			count++
		}
	}
	return count, nil
}

func (m *mockPresenceRepo) CountAbsences(_ context.Context, etudiantID, matiereID string) (int64, error) {
	var count int64
	for _, p := range m.presences {
		if p.EtudiantID == etudiantID && p.Statut == model.StatutAbsent && m.matiereOf(p) == matiereID {
			count++
		}
	}
	return count, nil
}

func (m *mockPresenceRepo) matiereOf(p *model.Presence) string {
	if m.seances == nil {
		return ""
	}
	if s, ok := m.seances.seances[p.SeanceID]; ok {
		return s.MatiereID
	}
	return ""
}

func (m *mockPresenceRepo) Update(_ context.Context, presence *model.Presence) error {
	stored := *presence
	stored.Seance = nil
	stored.Etudiant = nil
	m.presences[presence.PresenceID] = &stored
	return nil
}

func (m *mockPresenceRepo) Delete(_ context.Context, id string) error {
	delete(m.presences, id)
	return nil
}

// ── Mock AvertissementRepository ──

type mockAvertissementRepo struct {
	avertissements map[string]*model.Avertissement
	seq            int
}

func newMockAvertissementRepo() *mockAvertissementRepo {
	return &mockAvertissementRepo{avertissements: make(map[string]*model.Avertissement)}
}

func (m *mockAvertissementRepo) Create(_ context.Context, a *model.Avertissement) error {
	if a.AvertissementID == "" {
		m.seq++
		a.AvertissementID = fmt.Sprintf("avertissement-%d", m.seq)
	}
	m.avertissements[a.AvertissementID] = a
	return nil
}

func (m *mockAvertissementRepo) GetByID(_ context.Context, id string) (*model.Avertissement, error) {
	if a, ok := m.avertissements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvertissementRepo) List(_ context.Context) ([]model.Avertissement, error) {
	var result []model.Avertissement
	for _, a := range m.avertissements {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAvertissementRepo) ListByEtudiant(_ context.Context, etudiantID string) ([]model.Avertissement, error) {
	var result []model.Avertissement
	for _, a := range m.avertissements {
		if a.EtudiantID == etudiantID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAvertissementRepo) ListByMatiere(_ context.Context, matiereID string) ([]model.Avertissement, error) {
	var result []model.Avertissement
	for _, a := range m.avertissements {
		if a.MatiereID == matiereID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAvertissementRepo) ListByEtudiantAndMatiere(_ context.Context, etudiantID, matiereID string) ([]model.Avertissement, error) {
	var result []model.Avertissement
	for _, a := range m.avertissements {
		if a.EtudiantID == etudiantID && a.MatiereID == matiereID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAvertissementRepo) ListByAutomatique(_ context.Context, automatique bool) ([]model.Avertissement, error) {
	var result []model.Avertissement
	for _, a := range m.avertissements {
		if a.Automatique == automatique {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAvertissementRepo) ExistsByEtudiantAndMatiere(_ context.Context, etudiantID, matiereID string) (bool, error) {
	for _, a := range m.avertissements {
		if a.EtudiantID == etudiantID && a.MatiereID == matiereID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAvertissementRepo) CountByEtudiant(_ context.Context, etudiantID string) (int64, error) {
	var count int64
	for _, a := range m.avertissements {
		if a.EtudiantID == etudiantID {
			count++
		}
	}
	return count, nil
}

func (m *mockAvertissementRepo) Update(_ context.Context, a *model.Avertissement) error {
	m.avertissements[a.AvertissementID] = a
	return nil
}

func (m *mockAvertissementRepo) Delete(_ context.Context, id string) error {
	delete(m.avertissements, id)
	return nil
}

// ── Mock JustificatifRepository ──

type mockJustificatifRepo struct {
	justificatifs map[string]*model.Justificatif
	seq           int
}

func newMockJustificatifRepo() *mockJustificatifRepo {
	return &mockJustificatifRepo{justificatifs: make(map[string]*model.Justificatif)}
}

func (m *mockJustificatifRepo) Create(_ context.Context, j *model.Justificatif) error {
	if j.JustificatifID == "" {
		m.seq++
		j.JustificatifID = fmt.Sprintf("justificatif-%d", m.seq)
	}
	m.justificatifs[j.JustificatifID] = j
	return nil
}

func (m *mockJustificatifRepo) GetByID(_ context.Context, id string) (*model.Justificatif, error) {
	if j, ok := m.justificatifs[id]; ok {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJustificatifRepo) GetByAbsence(_ context.Context, absenceID string) (*model.Justificatif, error) {
	for _, j := range m.justificatifs {
		if j.AbsenceID == absenceID {
			return j, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJustificatifRepo) List(_ context.Context) ([]model.Justificatif, error) {
	var result []model.Justificatif
	for _, j := range m.justificatifs {
		result = append(result, *j)
	}
	return result, nil
}

func (m *mockJustificatifRepo) ListByEtudiant(_ context.Context, etudiantID string) ([]model.Justificatif, error) {
	var result []model.Justificatif
	for _, j := range m.justificatifs {
		if j.EtudiantID == etudiantID {
			result = append(result, *j)
		}
	}
	return result, nil
}

func (m *mockJustificatifRepo) ListByStatut(_ context.Context, statut model.StatutJustificatif) ([]model.Justificatif, error) {
	var result []model.Justificatif
	for _, j := range m.justificatifs {
		if j.Statut == statut {
			result = append(result, *j)
		}
	}
	return result, nil
}

func (m *mockJustificatifRepo) ListByValidateur(_ context.Context, validateurID string) ([]model.Justificatif, error) {
	var result []model.Justificatif
	for _, j := range m.justificatifs {
		if j.ValidateurID != nil && *j.ValidateurID == validateurID {
			result = append(result, *j)
		}
	}
	return result, nil
}

func (m *mockJustificatifRepo) ExistsByAbsence(_ context.Context, absenceID string) (bool, error) {
	for _, j := range m.justificatifs {
		if j.AbsenceID == absenceID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJustificatifRepo) Update(_ context.Context, j *model.Justificatif) error {
	m.justificatifs[j.JustificatifID] = j
	return nil
}

func (m *mockJustificatifRepo) Delete(_ context.Context, id string) error {
	delete(m.justificatifs, id)
	return nil
}

// ── Test repository aggregate ──

type testRepos struct {
	repo           *repository.Repository
	users          *mockUserRepo
	departements   *mockDepartementRepo
	formations     *mockFormationRepo
	groupes        *mockGroupeRepo
	groupeEtudiant *mockGroupeEtudiantRepo
	matieres       *mockMatiereRepo
	seances        *mockSeanceRepo
	presences      *mockPresenceRepo
	avertissements *mockAvertissementRepo
	justificatifs  *mockJustificatifRepo
}

func newTestRepos() *testRepos {
	users := newMockUserRepo()
	matieres := newMockMatiereRepo()
	seances := newMockSeanceRepo(matieres)

	t := &testRepos{
		users:          users,
		departements:   newMockDepartementRepo(),
		formations:     newMockFormationRepo(),
		groupes:        newMockGroupeRepo(),
		groupeEtudiant: newMockGroupeEtudiantRepo(users),
		matieres:       matieres,
		seances:        seances,
		presences:      newMockPresenceRepo(seances),
		avertissements: newMockAvertissementRepo(),
		justificatifs:  newMockJustificatifRepo(),
	}
	t.repo = &repository.Repository{
		User:           t.users,
		Departement:    t.departements,
		Formation:      t.formations,
		Groupe:         t.groupes,
		GroupeEtudiant: t.groupeEtudiant,
		Matiere:        t.matieres,
		Seance:         t.seances,
		Presence:       t.presences,
		Avertissement:  t.avertissements,
		Justificatif:   t.justificatifs,
	}
	return t
}
