package calcana

// Version is the published client version.
// 0.2.0: Add usuarios management (create/update/deactivate/reactivate,
// resetar-senha) and the perfis listing.
// 0.1.0: Initial release - login, token lifecycle, route gating, dashboard,
// fornecedores, propriedades and analises clients.
const Version = "0.2.0"
