package main

// @title           PDV Livraria API
// @version         1.0
// @description     API de sincronização de vendas e consistência de estoque para rede de livrarias e papelarias

// @contact.name   Suporte PDV Livraria
// @contact.email  suporte@pdvlivraria.com.br

// @host      localhost:8080
// @BasePath  /api/v1
